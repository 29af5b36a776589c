// Package diagnostic translates a free-text description of a car
// problem into a short analysis plus suggested catalog service ids,
// using a hosted generative model.
package diagnostic

import (
	"context"

	"varahicare/catalog"
	"varahicare/models"
)

// DiagnosticService performs a single triage call. A non-nil error means
// the transport failed; the returned result is still safe to show (the
// fallback payload), so callers can degrade gracefully while reporting
// the failure.
type DiagnosticService interface {
	Analyze(ctx context.Context, description string) (*models.DiagnosisResult, error)
}

const fallbackAnalysis = "We need to inspect your vehicle to be sure. Please book a diagnostic session."

// Fallback is the fixed payload returned whenever the model call or its
// response cannot be used.
func Fallback() *models.DiagnosisResult {
	return &models.DiagnosisResult{
		Analysis:            fallbackAnalysis,
		SuggestedServiceIDs: []string{catalog.GeneralServiceID},
	}
}

// SanitizeSuggestions drops suggested ids the catalog does not know and
// defaults to the general service when nothing survives.
func SanitizeSuggestions(ids []string) []string {
	known := catalog.FilterKnown(ids)
	if len(known) == 0 {
		return []string{catalog.GeneralServiceID}
	}
	return known
}
