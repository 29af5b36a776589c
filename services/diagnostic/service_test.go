package diagnostic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"varahicare/catalog"
)

// MockGenerator is a mock implementation of ContentGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestAnalyzeParsesStructuredResponse(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).
		Return(`{"analysis":"Likely worn brake pads.","suggestedServiceIds":["brake","general"]}`, nil)

	svc := NewDefaultDiagnosticService(gen, zap.NewNop())
	result, err := svc.Analyze(context.Background(), "grinding noise when braking")
	require.NoError(t, err)
	assert.Equal(t, "Likely worn brake pads.", result.Analysis)
	assert.Equal(t, []string{"brake", "general"}, result.SuggestedServiceIDs)
	gen.AssertExpectations(t)
}

func TestAnalyzeTransportFailureReturnsFallbackAndError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	svc := NewDefaultDiagnosticService(gen, zap.NewNop())
	result, err := svc.Analyze(context.Background(), "engine stalls at idle")
	assert.Error(t, err)
	assert.Equal(t, Fallback(), result)
}

func TestAnalyzeParseFailureReturnsFallbackWithoutError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).
		Return("sorry, I can only answer in prose", nil)

	svc := NewDefaultDiagnosticService(gen, zap.NewNop())
	result, err := svc.Analyze(context.Background(), "engine stalls at idle")
	require.NoError(t, err)
	assert.Equal(t, Fallback(), result)
}

func TestFallbackPayload(t *testing.T) {
	f := Fallback()
	assert.Equal(t, "We need to inspect your vehicle to be sure. Please book a diagnostic session.", f.Analysis)
	assert.Equal(t, []string{"general"}, f.SuggestedServiceIDs)
}

func TestSanitizeSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{"known ids pass through in order", []string{"oil", "brake"}, []string{"oil", "brake"}},
		{"unknown ids dropped", []string{"brake", "turbo"}, []string{"brake"}},
		{"all unknown defaults to general", []string{"turbo", "nitro"}, []string{"general"}},
		{"empty defaults to general", nil, []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSuggestions(tt.ids))
		})
	}
}

func TestBuildPromptEmbedsDescriptionAndCatalog(t *testing.T) {
	prompt := buildPrompt("white smoke from the exhaust")
	assert.Contains(t, prompt, "white smoke from the exhaust")
	assert.Contains(t, prompt, catalog.Workshop.Name)
	for _, name := range catalog.Names() {
		assert.True(t, strings.Contains(prompt, name), "prompt missing service %q", name)
	}
}
