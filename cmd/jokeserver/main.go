package main

import (
	"os"

	"github.com/vcrobe/jokepage/cmd/jokeserver/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
