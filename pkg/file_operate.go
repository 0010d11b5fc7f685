package pkg

import (
	"io"
	"os"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OpenInput 打开输入文件，路径为空或 "-" 时从 fallback 读取
func OpenInput(filePath string, fallback io.Reader) (io.ReadCloser, error) {
	if filePath == "" || filePath == "-" {
		return io.NopCloser(fallback), nil
	}
	return os.Open(filePath)
}

// OpenOutput 创建输出文件，路径为空或 "-" 时写到 fallback
func OpenOutput(filePath string, fallback io.Writer) (io.WriteCloser, error) {
	if filePath == "" || filePath == "-" {
		return nopWriteCloser{fallback}, nil
	}
	return os.Create(filePath)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
