// iso8601 包实现了 ISO 8601 日期、时间、日期时间、时长与 UTC 偏移的解析和规范化输出
// （宽松接受 RFC 3339）。
//
// 范围：
// - 日历日期 / 周日期 / 序数日期，基本格式与扩展格式
// - 时间：可选秒、小数（截断到毫秒）、可选偏移
// - 时长：标识符形式、周形式、日期时间形式
// - 规范输出：对任意解析结果 v，Parse(Render(v)) == v
// - 可选的流式输入（Stream）
//
// 非目标（设计如此）：
// - 日历合法性校验（2015-02-29、任意年份的第 366 天都会被接受）
// - 时区换算或归一化
// - 按日历展开时长
//
// Parse* 函数忽略值之后的剩余输入；Parse*Prefix 变体会把剩余输入返回给调用方。
// 所有函数都是纯函数，可并发调用。
package iso8601
