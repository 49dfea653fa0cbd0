// Package main provides the entry point for the hiring evaluation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hire_agent",
	Short: "Candidate requirement classification and scoring CLI",
	Long:  "hire_agent classifies role skill requirements from employer declarations and market postings, then scores candidates against them with a mandatory-skill gate and explainable go/hold/no decisions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
