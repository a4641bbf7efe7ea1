package main

import (
	"os"

	"github.com/forgo/sorm/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
