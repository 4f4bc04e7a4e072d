package main

import (
	"os"

	"github.com/ismailco/pwa2native/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
