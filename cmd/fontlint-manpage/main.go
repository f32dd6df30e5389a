package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fontlint/cmd/fontlint/commands"
	"github.com/arthur-debert/fontlint/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FONTLINT",
		Section: "1",
		Source:  "fontlint " + version.Version,
		Manual:  "fontlint manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
