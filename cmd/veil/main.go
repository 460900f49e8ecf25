package main

import (
	"os"

	"github.com/dshills/veil/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
