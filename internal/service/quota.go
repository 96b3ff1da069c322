package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type quotaService struct {
	auditRepo    repository.ProcessedEmailRepository
	defaultLimit int32
	now          func() time.Time
}

func NewQuotaService(auditRepo repository.ProcessedEmailRepository, defaultLimit int32) QuotaService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultDailyEmailLimit
	}
	return &quotaService{
		auditRepo:    auditRepo,
		defaultLimit: defaultLimit,
		now:          time.Now,
	}
}

// Check counts the user's audit records since local midnight and
// compares against the daily ceiling. A count failure blocks
// processing rather than letting it through.
func (s *quotaService) Check(ctx context.Context, userID uuid.UUID, maxDaily int32) *domain.QuotaStatus {
	if maxDaily <= 0 {
		maxDaily = s.defaultLimit
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.auditRepo.CountForUserSince(ctx, userID, startOfDay)
	if err != nil {
		logger.Error("Quota count failed", "user_id", userID, "error", err)
		return &domain.QuotaStatus{CanProcess: false, Error: err.Error()}
	}

	remaining := maxDaily - count
	if remaining < 0 {
		remaining = 0
	}

	return &domain.QuotaStatus{
		CanProcess:   count < maxDaily,
		CurrentCount: count,
		DailyLimit:   maxDaily,
		Remaining:    remaining,
	}
}
