package main

import (
	"tram.dev/cli/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
