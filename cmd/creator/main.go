// Package main is the entry point for the creator CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "creator",
	Short: "Creator stat-derivation service",
	Long:  `Creator derives stats, budgets, and costs for character and creature builds backed by a reference catalog and a Redis library.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (optional)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(catalogCmd)
}
