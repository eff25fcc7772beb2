// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a file-backed todo list for the terminal",
	Long: `todo is a small personal todo tracker backed by a single local file.

Entries carry a name, a description, and one of five priority levels.
The file lives wherever .todoconfig.toml points and can be stored as
json, csv, or plain text lines.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")
}
