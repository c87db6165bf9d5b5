// Package main provides the entry point for the grammar checker HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grammar_server",
	Short: "AI grammar checker backend",
	Long:  "Backend for the AI writing assistant: proxies requests to local and cloud LLM providers and post-processes responses into validated positional text suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
