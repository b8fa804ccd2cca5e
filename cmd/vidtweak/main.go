package main

import "github.com/forPelevin/vidtweak/internal/cli"

func main() {
	cli.Main()
}
