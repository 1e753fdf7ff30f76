package main

import (
	"os"

	"github.com/jmcampanini/authorcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
