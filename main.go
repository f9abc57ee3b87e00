package main

import "github.com/yaoapp/jumia/cmd"

func main() {
	cmd.Execute()
}
