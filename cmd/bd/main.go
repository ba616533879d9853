package main

import (
	"os"

	"github.com/bnema/bundle-deploy-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
