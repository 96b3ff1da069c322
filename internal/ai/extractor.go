// Package ai wraps the generative model used to pull structured guest
// data out of free-text emails. The extractor never returns an error:
// every failure mode (model call, malformed output, bad JSON) is
// folded into the ExtractionResult so the caller always gets a value.
package ai

import (
	"context"

	"sric-access-backend/internal/domain"
)

// Extractor extracts structured guest-visit data from an email body.
type Extractor interface {
	Extract(ctx context.Context, emailContent, senderEmail string) *domain.ExtractionResult
	ModelName() string
}
