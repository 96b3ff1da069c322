package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sric-access-backend/internal/domain"
)

type ProfileRepository interface {
	// GetApprovedByEmail looks up a profile by exact email match,
	// restricted to Approved accounts.
	GetApprovedByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	SetEmailProcessing(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

type ProcessedEmailRepository interface {
	Create(ctx context.Context, record *domain.ProcessedEmail) error
	GetByID(ctx context.Context, id int64) (*domain.ProcessedEmail, error)
	MarkApproved(ctx context.Context, id, guestID int64, processedAt time.Time) error
	MarkRejected(ctx context.Context, id int64, reason string) error
	CountForUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int32, error)
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error)
}
