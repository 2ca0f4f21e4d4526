package main

import (
	"os"

	"github.com/hueforge/huebuild/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
