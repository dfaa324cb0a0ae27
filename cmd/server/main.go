// Package main is the entry point for the compendium server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-compendium",
	Short: "RPG Compendium server and tools",
	Long: `RPG Compendium stores tabletop rule entities (spells, creatures, items, ...)
and renders them into structured display fragments over gRPC and HTTP.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(rollHPCmd)
}
