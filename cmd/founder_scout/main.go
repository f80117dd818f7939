// Package main provides the entry point for the founder-scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "founder_scout",
	Short: "Founder Scout candidate aggregation CLI",
	Long:  "Founder Scout searches public developer profiles, aggregates activity and repository signals, and ranks candidates by founder potential.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
