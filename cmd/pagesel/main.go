package main

import "github.com/mydehq/pagesel/internal/cli"

func main() {
	cli.Execute()
}
