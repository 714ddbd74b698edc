package main

import (
	"os"

	"github.com/nanamils/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
