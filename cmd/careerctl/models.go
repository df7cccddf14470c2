package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/careerscope/internal/service"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List Gemini models that support generateContent",
	Long:  `List the Gemini models available to GEMINI_API_KEY that can serve analysis requests.`,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv(service.CredentialSetting)
	if apiKey == "" {
		return fmt.Errorf("%s environment variable is required", service.CredentialSetting)
	}

	gemini, err := service.NewGeminiClient(cmd.Context(), apiKey, "")
	if err != nil {
		return err
	}
	defer gemini.Close()

	models, err := gemini.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available Models:")
	for _, m := range models {
		fmt.Fprintf(out, "- %s (Version: %s)\n", m.Name, m.Version)
	}
	return nil
}
