// Package main provides the entry point for the growth advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "growth_advisor",
	Short: "Student Growth Advisory Report Engine",
	Long:  "growth_advisor aggregates a student's school records, generates a personalized AI growth report, and manages the widget layout and content overrides used to present it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
