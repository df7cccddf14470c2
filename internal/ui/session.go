package ui

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yourusername/careerscope/internal/apperr"
	"github.com/yourusername/careerscope/internal/model"
)

const msgMissingJobText = "Please provide the Job Description."

// ErrBusy is returned when Submit is called while a request is in flight
var ErrBusy = errors.New("an analysis is already in progress")

// AnalysisClient performs the request to the analysis service
type AnalysisClient interface {
	Analyze(ctx context.Context, profile model.CandidateProfile, jobText string) (*model.AnalysisResult, error)
}

// Notice is a blocking message shown to the user
type Notice struct {
	Title   string
	Message string
}

func (n Notice) String() string {
	if n.Title == "" {
		return n.Message
	}
	return n.Title + ": " + n.Message
}

// Notifier displays notices
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Session wires the form, trigger and results region to an analysis client
type Session struct {
	Form    *FormState
	Trigger *Trigger
	Results *ResultState

	client   AnalysisClient
	notifier Notifier
	logger   zerolog.Logger
}

func NewSession(client AnalysisClient, notifier Notifier, score ScoreFunc, logger zerolog.Logger) *Session {
	return &Session{
		Form:     &FormState{},
		Trigger:  NewTrigger(),
		Results:  NewResultState(score),
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit runs one analysis for the current form. The trigger is restored on
// every exit path, and a failure never leaves partial results on screen.
func (s *Session) Submit(ctx context.Context) error {
	profile := s.Form.Collect()
	jobText := s.Form.JobText

	if jobText == "" {
		s.notifier.Notify(Notice{Message: msgMissingJobText})
		return &apperr.ValidationError{Message: msgMissingJobText}
	}

	if !s.Trigger.Begin() {
		return ErrBusy
	}
	defer s.Trigger.Restore()

	s.Results.Hide()

	result, err := s.client.Analyze(ctx, profile, jobText)
	if err != nil {
		s.logger.Error().Err(err).Msg("Analysis request failed")
		s.notifier.Notify(Notice{Title: "System Error", Message: err.Error()})
		return err
	}

	s.Results.Apply(result)
	return nil
}
