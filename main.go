package main

import "github.com/dzjyyds666/iso8601/cmd"

func main() {
	cmd.Execute()
}
