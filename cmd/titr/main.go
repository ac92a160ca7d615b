package main

import (
	"os"

	"github.com/blairfrandeen/titr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
