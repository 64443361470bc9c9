package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/govsetup/cmd/govsetup"
	"github.com/arthur-debert/govsetup/internal/version"
)

func main() {
	rootCmd := govsetup.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GOVSETUP",
		Section: "1",
		Source:  "govsetup " + version.Version,
		Manual:  "govsetup manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
