package domain

// ProcessResult is the terminal result of processing one inbound
// email. The JSON shape is a wire contract with webhook callers and
// must stay stable: {success, message, data, errors}.
type ProcessResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *ProcessData `json:"data"`
	Errors  []string     `json:"errors"`
}

// ProcessData carries the details of a successful run.
type ProcessData struct {
	RecordID        *int64           `json:"record_id"`
	CreatedGuests   []Guest          `json:"created_guests"`
	ExtractedGuests []ExtractedGuest `json:"extracted_guests"`
	ConfidenceScore float64          `json:"confidence_score"`
	ProcessingNotes string           `json:"processing_notes"`
	UserInfo        UserInfo         `json:"user_info"`
}

// UserInfo identifies the inviting user on a successful result.
type UserInfo struct {
	Name           string `json:"name"`
	Organization   string `json:"organization"`
	RemainingDaily int32  `json:"remaining_daily"`
}
