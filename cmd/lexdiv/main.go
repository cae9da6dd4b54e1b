package main

import "lexdiv/internal/cli"

func main() {
	cli.Execute()
}
