package main

import "github.com/soli0222/wordle-cli/internal/cli"

func main() {
	cli.Execute()
}
