package main

import "github.com/strataconf/strata/internal/interfaces/cli"

func main() {
	cli.Execute()
}
