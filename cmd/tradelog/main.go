package main

import "github.com/rmaxey/tradelog/internal/cli"

func main() {
	cli.Execute()
}
