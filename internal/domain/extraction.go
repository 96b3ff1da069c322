package domain

// ExtractedGuest is one guest entry extracted from a free-text email.
// An entry is only kept when name, visit_date and estimated_arrival
// all survive normalization; everything else gets defaults.
type ExtractedGuest struct {
	Name             string `json:"name"`
	VisitDate        string `json:"visit_date"`
	EstimatedArrival string `json:"estimated_arrival"`
	Organization     string `json:"organization"`
	FloorAccess      string `json:"floor_access"`
	Purpose          string `json:"purpose"`
	Notes            string `json:"notes"`
}

// ExtractionResult is the validated outcome of one model extraction.
// ConfidenceScore is always clamped into [0,1] no matter what the
// model returned.
type ExtractionResult struct {
	Guests          []ExtractedGuest `json:"guests"`
	ConfidenceScore float64          `json:"confidence_score"`
	ProcessingNotes string           `json:"processing_notes"`
	Errors          []string         `json:"errors"`
}

// InboundEmail is the raw triple an ingestion source hands to the
// processor. Not persisted beyond the audit record.
type InboundEmail struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Content string `json:"text"`
}
