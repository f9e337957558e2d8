// Package main is the entry point for the sheet CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Character sheet derivation engine",
	Long:  `sheet derives character attributes from base scores, items, features, and user adjustments, and shows where every bonus came from.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(seedCmd)
}
