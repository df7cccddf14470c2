package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service    string
	configured func() bool
}

func NewHealthHandler(service string, configured func() bool) *HealthHandler {
	return &HealthHandler{service: service, configured: configured}
}

// Health handles GET /health
// Stays 200 without a Gemini key; "modelConfigured" tells operators why analyses fail
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"service":         h.service,
		"modelConfigured": h.configured(),
		"time":            time.Now().UTC(),
	})
}
