package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/careerscope/internal/apperr"
	"github.com/yourusername/careerscope/internal/model"
)

// CredentialSetting names the env var holding the upstream API key
const CredentialSetting = "GEMINI_API_KEY"

// Analyzer turns an AnalysisRequest into the model's JSON analysis
type Analyzer struct {
	gen Generator
}

// NewAnalyzer returns an Analyzer. A nil generator means the upstream
// credential is missing and every call fails with a ConfigurationError.
func NewAnalyzer(gen Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Configured reports whether a generator is available
func (a *Analyzer) Configured() bool {
	return a.gen != nil
}

// Analyze calls the model once and returns its JSON unmodified.
// The body is checked for JSON syntax only, never against the AnalysisResult shape.
func (a *Analyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) (json.RawMessage, error) {
	if req == nil || req.CVData == nil || req.JobText == "" {
		return nil, &apperr.ValidationError{Message: "CV Data and Job Offer text are required."}
	}
	if a.gen == nil {
		return nil, &apperr.ConfigurationError{Setting: CredentialSetting}
	}

	prompt := BuildAnalysisPrompt(req.CVData, req.JobText)

	log.Info().
		Int("promptLength", len(prompt)).
		Int("experienceEntries", len(req.CVData.Experience)).
		Msg("Requesting analysis from Gemini")

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, &apperr.UpstreamError{Err: err}
	}

	cleaned := StripCodeFences(text)

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(cleaned)); err != nil {
		log.Error().Err(err).Str("raw", text).Msg("Failed to parse JSON from LLM")
		return nil, &apperr.ParseError{Raw: text, Err: fmt.Errorf("invalid model output: %w", err)}
	}

	return json.RawMessage(buf.Bytes()), nil
}
