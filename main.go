package main

import "github.com/hmezali/iacscan/cmd"

func main() {
	cmd.Execute()
}
