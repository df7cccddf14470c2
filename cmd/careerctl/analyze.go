package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yourusername/careerscope/internal/client"
	"github.com/yourusername/careerscope/internal/ui"
)

var (
	analyzeServer      string
	analyzeProfilePath string
	analyzeJobText     string
	analyzeJobFile     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate profile against a job description",
	Long: `Read a candidate profile (YAML or JSON), send it with the job description to
the analysis service, and print the match score, skill gaps, learning plan and job links.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeServer, "server", client.DefaultBaseURL, "Analysis service base URL")
	analyzeCmd.Flags().StringVarP(&analyzeProfilePath, "profile", "p", "", "Path to the candidate profile (YAML or JSON, '-' for stdin)")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job-file", "", "Path to a file containing the job description")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	form, err := loadForm(cmd.InOrStdin(), analyzeProfilePath)
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(form.JobText, analyzeJobText, analyzeJobFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	session := ui.NewSession(
		client.New(analyzeServer, nil),
		ui.NotifierFunc(func(n ui.Notice) { fmt.Fprintln(errOut, n.String()) }),
		ui.RandomScore,
		log.Logger,
	)
	session.Form = form
	session.Form.JobText = jobText

	fmt.Fprintln(errOut, ui.LabelBusy)
	if err := session.Submit(cmd.Context()); err != nil {
		return reportedError{err: err}
	}

	return ui.WriteText(out, session.Results.View)
}

func loadForm(stdin io.Reader, path string) (*ui.FormState, error) {
	if path == "" {
		return &ui.FormState{}, nil
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening profile: %w", err)
		}
		defer f.Close()
		r = f
	}

	return ui.LoadForm(r)
}

// resolveJobText picks the job description: --job-file, then --job, then the profile document
func resolveJobText(fromProfile, flagText, flagFile string) (string, error) {
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", fmt.Errorf("reading job description: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if flagText != "" {
		return flagText, nil
	}
	return fromProfile, nil
}
