package main

import (
	"os"

	"quiz-data-generator/internal/cli"
)

func main() {
	os.Exit(cli.RunExtract(os.Args[1:], os.Stdout, os.Stderr))
}
