package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dohook/cmd/dohook"
)

func main() {
	rootCmd := dohook.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, dohook.RenderError(err))
		os.Exit(1)
	}
}
