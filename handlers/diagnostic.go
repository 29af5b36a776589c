package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"varahicare/services/diagnostic"
)

// DiagnosticRequest is the expected input for symptom triage.
type DiagnosticRequest struct {
	Description string `json:"description" binding:"required"`
}

// DiagnosticHandler exposes the AI triage endpoint.
type DiagnosticHandler struct {
	Svc    diagnostic.DiagnosticService
	Logger *zap.Logger
}

func NewDiagnosticHandler(svc diagnostic.DiagnosticService, logger *zap.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{Svc: svc, Logger: logger}
}

// AnalyzeProblem handles POST /api/diagnostics. The response is always a
// usable payload; degraded=true tells the client the model transport
// failed so it can stop offering the feature.
func (h *DiagnosticHandler) AnalyzeProblem(c *gin.Context) {
	var req DiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description must not be empty"})
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req.Description)
	degraded := err != nil
	if degraded {
		h.Logger.Error("diagnostic call degraded to fallback", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":            result.Analysis,
		"suggestedServiceIds": diagnostic.SanitizeSuggestions(result.SuggestedServiceIDs),
		"degraded":            degraded,
	})
}
