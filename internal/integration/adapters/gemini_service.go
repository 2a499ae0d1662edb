// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fintrack/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

var _ adapter.CategorySuggester = (*GeminiService)(nil)

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini to pick the best matching category for a
// transaction description.
func (s *GeminiService) SuggestCategory(ctx context.Context, description string, candidates []string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "text/plain"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(description, candidates)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return strings.TrimSpace(suggestion), nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(description string, candidates []string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert at categorizing personal finance transactions.\n")
	sb.WriteString("Pick the single best category for the transaction description below.\n\n")
	sb.WriteString("RULES:\n")
	sb.WriteString("- Answer with exactly one category name from the list, nothing else\n")
	sb.WriteString("- No explanation, no punctuation, no quotes\n")
	sb.WriteString("- If nothing fits, answer: Other\n\n")
	sb.WriteString("CATEGORIES:\n")
	for _, c := range candidates {
		sb.WriteString("- ")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	sb.WriteString("\nDESCRIPTION: ")
	sb.WriteString(description)
	sb.WriteString("\n")

	return sb.String()
}

// extractText pulls the first text part out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("response has no content")
	}
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("response has no text part")
}
