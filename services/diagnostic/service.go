package diagnostic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"varahicare/catalog"
	"varahicare/models"
)

// ContentGenerator is the slice of the model client this service needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultDiagnosticService sends one prompt per call, no retries.
type DefaultDiagnosticService struct {
	Client ContentGenerator
	Logger *zap.Logger
}

func NewDefaultDiagnosticService(client ContentGenerator, logger *zap.Logger) *DefaultDiagnosticService {
	return &DefaultDiagnosticService{Client: client, Logger: logger}
}

func buildPrompt(description string) string {
	return fmt.Sprintf(
		`As an expert car mechanic for '%s', analyze this customer problem: %q. `+
			`Suggest which services from this list they might need: %s. `+
			`Provide a short professional response.`,
		catalog.Workshop.Name, description, strings.Join(catalog.Names(), ", "),
	)
}

func (s *DefaultDiagnosticService) Analyze(ctx context.Context, description string) (*models.DiagnosisResult, error) {
	raw, err := s.Client.GenerateContent(ctx, buildPrompt(description))
	if err != nil {
		// Transport failure stays visible to the caller; the payload is
		// still the safe fallback.
		s.Logger.Error("diagnostic: model call failed", zap.Error(err))
		return Fallback(), err
	}

	var result models.DiagnosisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.Logger.Warn("diagnostic: unparseable model response, using fallback",
			zap.Error(err), zap.String("raw", raw))
		return Fallback(), nil
	}
	return &result, nil
}
