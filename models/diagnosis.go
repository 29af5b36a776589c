package models

// DiagnosisResult is the structured outcome of a single symptom-triage
// call. It is transient: never persisted, replaced on the next call.
type DiagnosisResult struct {
	Analysis            string   `json:"analysis"`
	SuggestedServiceIDs []string `json:"suggestedServiceIds"`
}
