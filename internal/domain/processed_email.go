package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProcessingStatus string

const (
	ProcessingStatusPending  ProcessingStatus = "pending"
	ProcessingStatusApproved ProcessingStatus = "approved"
	ProcessingStatusRejected ProcessingStatus = "rejected"
)

// ProcessedEmail is the audit record written for every email the
// pipeline turns into guests. One row per processed email; never
// deleted by the pipeline.
type ProcessedEmail struct {
	ID                   int64            `json:"id"`
	UserID               uuid.UUID        `json:"user_id"`
	SenderEmail          string           `json:"sender_email"`
	EmailSubject         string           `json:"email_subject"`
	OriginalEmailContent string           `json:"original_email_content"`
	ExtractedData        ExtractionResult `json:"extracted_data"`
	ConfidenceScore      float64          `json:"confidence_score"`
	ProcessingErrors     []string         `json:"processing_errors"`
	AIModelUsed          string           `json:"ai_model_used"`
	ProcessingStatus     ProcessingStatus `json:"processing_status"`
	GuestID              *int64           `json:"guest_id,omitempty"`
	RejectedReason       string           `json:"rejected_reason,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	ProcessedAt          *time.Time       `json:"processed_at,omitempty"`
}

// ProcessingStats summarizes a user's email processing history for
// the dashboard stats endpoint.
type ProcessingStats struct {
	TotalEmailsProcessed int32      `json:"total_emails_processed"`
	PendingCount         int32      `json:"pending_count"`
	ApprovedCount        int32      `json:"approved_count"`
	RejectedCount        int32      `json:"rejected_count"`
	ErrorCount           int32      `json:"error_count"`
	AvgConfidenceScore   float64    `json:"avg_confidence_score"`
	LastEmailProcessed   *time.Time `json:"last_email_processed"`
}
