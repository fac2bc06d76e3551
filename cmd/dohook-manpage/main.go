package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dohook/cmd/dohook"
	"github.com/arthur-debert/dohook/internal/version"
)

func main() {
	rootCmd := dohook.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOHOOK",
		Section: "1",
		Source:  "dohook " + version.Version,
		Manual:  "dohook manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
