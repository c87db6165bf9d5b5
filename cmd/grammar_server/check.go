package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/config"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/pipeline"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

var (
	checkProvider string
	checkModel    string
	checkMode     string
	checkFile     string
)

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Run the suggestion pipeline once and print the result",
	Long:  `Run one grammar or enhancement check against the chosen provider without starting the server. Text comes from the argument, --file, or stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkProvider, "provider", "ollama", "Provider to use")
	checkCmd.Flags().StringVar(&checkModel, "model", "", "Model name (provider default if empty)")
	checkCmd.Flags().StringVar(&checkMode, "mode", pipeline.ModeGrammar, "Check mode: grammar or enhance")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read text from file instead of argument")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	text, err := readCheckInput(args)
	if err != nil {
		return err
	}

	cfg := config.Load()
	p := pipeline.New(dispatch.New(cfg.DispatcherOptions()))

	resp, err := p.Check(context.Background(), pipeline.Options{
		Text: text,
		Mode: checkMode,
		Model: types.ModelConfig{
			Provider: types.Provider(checkProvider),
			Model:    checkModel,
		},
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func readCheckInput(args []string) (string, error) {
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", checkFile, err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
