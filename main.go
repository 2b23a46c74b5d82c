package main

import "shellpane/internal/cli"

func main() {
	cli.Execute()
}
