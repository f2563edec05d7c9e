package main

import "docagent/internal/cli"

func main() {
	cli.Execute()
}
