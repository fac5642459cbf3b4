package main

import (
	"os"

	"github.com/quill-lang/quill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
