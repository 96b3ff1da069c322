package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sric-access-backend/internal/domain"
)

var (
	ErrRecordNotFound   = errors.New("email record not found")
	ErrAlreadyProcessed = errors.New("record already processed")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

// SenderService resolves a raw "From" header to an authorized profile.
type SenderService interface {
	Authorize(ctx context.Context, rawFrom string) *domain.SenderCheck
}

// QuotaService enforces per-user daily email processing ceilings.
type QuotaService interface {
	Check(ctx context.Context, userID uuid.UUID, maxDaily int32) *domain.QuotaStatus
}

// ProcessorService runs one inbound email through the full pipeline:
// authorization, quota, extraction, guest creation and audit.
type ProcessorService interface {
	ProcessIncomingEmail(ctx context.Context, from, subject, content string) *domain.ProcessResult
}

// GuestReviewService backs the dashboard's manual review flow over
// pipeline audit records.
type GuestReviewService interface {
	ListPending(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error)
	Approve(ctx context.Context, userID uuid.UUID, recordID int64, guest domain.ExtractedGuest) (*domain.Guest, error)
	Reject(ctx context.Context, userID uuid.UUID, recordID int64, reason string) error
	Stats(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error)
}

// NotificationService sends outbound email notifications.
type NotificationService interface {
	SendArrivalNotification(ctx context.Context, toEmail, toName string, guest *domain.Guest) error
}

// AdminService covers Security-only maintenance operations.
type AdminService interface {
	SetEmailLimits(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error
}
