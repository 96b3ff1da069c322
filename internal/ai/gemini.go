package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/extraction"
	"sric-access-backend/internal/logger"
)

const DefaultModel = "gemini-1.5-flash"

const promptTemplate = `
You are a guest information extraction system for the SRIC Access Portal.
Extract guest details from the provided email and return ONLY a valid JSON response.

IMPORTANT RULES:
1. Return ONLY valid JSON - no additional text or explanations
2. If no clear guest information is found, return an empty array
3. Be conservative with confidence scores (0.0 to 1.0)
4. Use reasonable defaults for missing information
5. Convert dates to YYYY-MM-DD format
6. Convert times to HH:MM format (24-hour)

Expected JSON format:
{
  "guests": [
    {
      "name": "Full Name",
      "visit_date": "YYYY-MM-DD",
      "estimated_arrival": "HH:MM",
      "organization": "Organization Name",
      "floor_access": "Floor X" or "Floors X, Y",
      "purpose": "Meeting purpose",
      "notes": "Additional notes"
    }
  ],
  "confidence_score": 0.85,
  "processing_notes": "Brief explanation of extraction"
}

EMAIL CONTENT TO PROCESS:
%s

SENDER EMAIL: %s
`

// GeminiExtractor extracts guest data using the Gemini API.
type GeminiExtractor struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiExtractor creates an extractor bound to the given model.
// An empty model name falls back to DefaultModel.
func NewGeminiExtractor(ctx context.Context, apiKey, modelName string) (*GeminiExtractor, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiExtractor{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

func (e *GeminiExtractor) ModelName() string {
	return e.modelName
}

// Close releases the underlying API client.
func (e *GeminiExtractor) Close() error {
	return e.client.Close()
}

// Extract sends the email to the model and validates the response.
func (e *GeminiExtractor) Extract(ctx context.Context, emailContent, senderEmail string) *domain.ExtractionResult {
	prompt := fmt.Sprintf(promptTemplate, emailContent, senderEmail)

	logger.ExternalServiceCall("gemini", "GenerateContent", "model", e.modelName)
	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt))
	logger.ExternalServiceResult("gemini", "GenerateContent", err)
	if err != nil {
		return errorResult(err)
	}

	return ParseResponse(responseText(resp))
}

// responseText concatenates all text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// ParseResponse turns raw model output into a validated
// ExtractionResult. Markdown code fences are stripped before parsing
// since models routinely wrap JSON in them despite instructions.
func ParseResponse(text string) *domain.ExtractionResult {
	cleaned := stripCodeFences(text)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return errorResult(err)
	}

	return extraction.Validate(raw)
}

func stripCodeFences(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func errorResult(err error) *domain.ExtractionResult {
	return &domain.ExtractionResult{
		Guests:          []domain.ExtractedGuest{},
		ConfidenceScore: 0,
		ProcessingNotes: fmt.Sprintf("Error processing email: %s", err.Error()),
		Errors:          []string{err.Error()},
	}
}
