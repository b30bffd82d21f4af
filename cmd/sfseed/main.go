// Package main provides the entry point for the sfseed test data tool.
package main

import (
	"fmt"
	"os"

	"github.com/TFMV/sfseed/version"
	"github.com/spf13/cobra"
)

// newRootCommand assembles the CLI.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sfseed",
		Short: "sfseed generates realistic Salesforce test data",
		Long: `sfseed reads a Salesforce object describe and synthesizes rows that
conform to it: field types, picklists, dependent picklists, compound
addresses, and person/business record type duality. The output can be
written as CSV, Arrow, or Parquet, or pushed straight into an org with
the Bulk API.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of sfseed",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("sfseed v%s (built %s)\n", version.GetVersion(), version.GetBuildDate())
		},
	})

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// Main entry point for the sfseed tool
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
