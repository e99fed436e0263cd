package main

import (
	"os"

	"github.com/Rahmatulah12/strfmt/cmd/strfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
