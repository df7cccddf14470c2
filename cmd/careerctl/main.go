// Package main provides careerctl, a command-line client for the CareerScope analysis service.
package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "careerctl",
	Short:         "CareerScope command-line client",
	Long:          "careerctl submits a candidate profile and a job description to the CareerScope analysis service and prints the strategic analysis.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		if !alreadyReported(err) {
			log.Error().Err(err).Msg("careerctl failed")
		}
		os.Exit(1)
	}
}

// reportedError wraps a failure the session has already shown to the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func alreadyReported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}
