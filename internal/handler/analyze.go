package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careerscope/internal/apperr"
	"github.com/yourusername/careerscope/internal/middleware"
	"github.com/yourusername/careerscope/internal/model"
)

const (
	msgMissingInput = "CV Data and Job Offer text are required."
	msgParseFailed  = "Failed to parse analysis results."
	msgAnalyzeFail  = "Failed to analyze. "
)

// Analyzer is the service-side analysis operation
type Analyzer interface {
	Analyze(ctx context.Context, req *model.AnalysisRequest) (json.RawMessage, error)
}

type AnalyzeHandler struct {
	analyzer Analyzer
}

func NewAnalyzeHandler(analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// Analyze handles POST /analyze
// Accepts {cvData, jobText}, asks the model for a strategic analysis and relays its JSON verbatim
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), &req)
	if err != nil {
		status, msg := errorResponse(err)
		log.Error().
			Err(err).
			Int("status", status).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Failed to analyze candidate")
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// errorResponse maps a service error to the status and message sent to the client
func errorResponse(err error) (int, string) {
	var (
		validation *apperr.ValidationError
		cfgErr     *apperr.ConfigurationError
		parseErr   *apperr.ParseError
	)

	switch {
	case errors.As(err, &validation):
		return apperr.HTTPStatus(err), validation.Message
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, msgParseFailed
	default:
		return apperr.HTTPStatus(err), msgAnalyzeFail + err.Error()
	}
}
