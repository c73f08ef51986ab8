package main

import (
	"os"

	"github.com/reviewgate/reviewgate/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
