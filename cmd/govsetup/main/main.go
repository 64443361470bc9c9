package main

import (
	"os"

	"github.com/arthur-debert/govsetup/cmd/govsetup"
)

func main() {
	rootCmd := govsetup.NewRootCmd()
	err := rootCmd.Execute()
	os.Exit(govsetup.ExitCode(err, os.Stdout, os.Stderr))
}
