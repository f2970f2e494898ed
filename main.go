package main

import (
	"os"

	"github.com/techniq-app/techniq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
