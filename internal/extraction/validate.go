package extraction

import (
	"fmt"
	"math"
	"strings"

	"sric-access-backend/internal/domain"
)

// Validate narrows a loosely-typed model payload into an
// ExtractionResult. Model output is a contract, not a guarantee:
// missing, extra or badly-typed fields are tolerated, incomplete guest
// entries are dropped and recorded in Errors, and the confidence score
// is clamped into [0,1]. Validate never returns nil and never lets a
// panic escape to its caller.
func Validate(raw map[string]any) (result *domain.ExtractionResult) {
	result = &domain.ExtractionResult{
		Guests: []domain.ExtractedGuest{},
		Errors: []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			result = &domain.ExtractionResult{
				Guests:          []domain.ExtractedGuest{},
				ConfidenceScore: 0,
				ProcessingNotes: "Data validation failed",
				Errors:          []string{fmt.Sprint(r)},
			}
		}
	}()

	result.ConfidenceScore = clampConfidence(raw["confidence_score"])
	result.ProcessingNotes = stringField(raw, "processing_notes")

	rawGuests, ok := raw["guests"].([]any)
	if !ok {
		result.Errors = append(result.Errors, "No valid guest array found")
		return result
	}

	for _, entry := range rawGuests {
		guest, ok := entry.(map[string]any)
		if !ok {
			result.Errors = append(result.Errors, "Incomplete guest data for: Unknown")
			continue
		}

		validated := domain.ExtractedGuest{
			Name:             stringField(guest, "name"),
			VisitDate:        NormalizeDate(stringField(guest, "visit_date")),
			EstimatedArrival: NormalizeTime(stringField(guest, "estimated_arrival")),
			Organization:     stringFieldDefault(guest, "organization", "Unknown"),
			FloorAccess:      stringFieldDefault(guest, "floor_access", "Floor 1"),
			Purpose:          stringField(guest, "purpose"),
			Notes:            stringField(guest, "notes"),
		}

		if validated.Name != "" && validated.VisitDate != "" && validated.EstimatedArrival != "" {
			result.Guests = append(result.Guests, validated)
		} else {
			name := stringField(guest, "name")
			if name == "" {
				name = "Unknown"
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Incomplete guest data for: %s", name))
		}
	}

	return result
}

// clampConfidence coerces any value into a float in [0,1]. Non-numeric
// and NaN inputs count as 0.
func clampConfidence(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func stringFieldDefault(m map[string]any, key, fallback string) string {
	s := stringField(m, key)
	if s == "" {
		return fallback
	}
	return s
}
