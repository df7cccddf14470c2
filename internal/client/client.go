// Package client calls the analysis service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yourusername/careerscope/internal/apperr"
	"github.com/yourusername/careerscope/internal/model"
)

const (
	// DefaultBaseURL is where the analysis service listens by default
	DefaultBaseURL = "http://localhost:3000"

	msgMissingJobText = "Please provide the Job Description."
	msgAnalysisFailed = "Analysis failed"
)

// Client issues analysis requests against the analysis service.
// It never retries; a request runs until the transport or ctx ends it.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Analyze posts the profile and job text and decodes the analysis
func (c *Client) Analyze(ctx context.Context, profile model.CandidateProfile, jobText string) (*model.AnalysisResult, error) {
	if jobText == "" {
		return nil, &apperr.ValidationError{Message: msgMissingJobText}
	}

	jsonBody, err := json.Marshal(model.AnalysisRequest{CVData: &profile, JobText: jobText})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperr.TransportError{Op: "POST /analyze", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.TransportError{Op: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperr.HTTPError{Status: resp.StatusCode, Message: serverMessage(body)}
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &apperr.ParseError{Raw: string(body), Err: err}
	}

	return &result, nil
}

// serverMessage pulls {"error": "..."} out of a failure body
func serverMessage(body []byte) string {
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err != nil || errBody.Error == "" {
		return msgAnalysisFailed
	}
	return errBody.Error
}
