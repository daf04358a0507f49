package main

import "github.com/huanfeng/apkscope/cmd"

func main() {
	cmd.Execute()
}
