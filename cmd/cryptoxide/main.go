package main

import (
	"os"

	"github.com/mzabaluev/cryptoxide/cmd/cryptoxide/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
