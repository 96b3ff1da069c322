package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/repository"
)

type guestReviewService struct {
	auditRepo repository.ProcessedEmailRepository
	guestRepo repository.GuestRepository
}

func NewGuestReviewService(auditRepo repository.ProcessedEmailRepository, guestRepo repository.GuestRepository) GuestReviewService {
	return &guestReviewService{
		auditRepo: auditRepo,
		guestRepo: guestRepo,
	}
}

func (s *guestReviewService) ListPending(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error) {
	return s.auditRepo.ListPendingByUser(ctx, userID)
}

// Approve creates a guest from a reviewed (possibly edited) extraction
// entry and closes out the audit record. The record must belong to the
// user and still be pending.
func (s *guestReviewService) Approve(ctx context.Context, userID uuid.UUID, recordID int64, guestData domain.ExtractedGuest) (*domain.Guest, error) {
	record, err := s.auditRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrRecordNotFound
	}
	if record.ProcessingStatus != domain.ProcessingStatusPending {
		return nil, ErrAlreadyProcessed
	}

	guest := &domain.Guest{
		Name:             guestData.Name,
		VisitDate:        guestData.VisitDate,
		EstimatedArrival: guestData.EstimatedArrival,
		ArrivalStatus:    false,
		FloorAccess:      guestData.FloorAccess,
		InviterID:        record.UserID,
		Organization:     guestData.Organization,
		RequesterEmail:   record.SenderEmail,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}

	if err := s.auditRepo.MarkApproved(ctx, record.ID, guest.ID, time.Now()); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestReviewService) Reject(ctx context.Context, userID uuid.UUID, recordID int64, reason string) error {
	record, err := s.auditRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		return err
	}
	if record.UserID != userID {
		return ErrRecordNotFound
	}
	if record.ProcessingStatus != domain.ProcessingStatusPending {
		return ErrAlreadyProcessed
	}

	if reason == "" {
		reason = "Rejected by user"
	}
	return s.auditRepo.MarkRejected(ctx, record.ID, reason)
}

func (s *guestReviewService) Stats(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error) {
	return s.auditRepo.StatsForUser(ctx, userID)
}
