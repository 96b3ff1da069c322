package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/extraction"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type senderService struct {
	profileRepo repository.ProfileRepository
}

func NewSenderService(profileRepo repository.ProfileRepository) SenderService {
	return &senderService{profileRepo: profileRepo}
}

// Authorize resolves the raw From header to a directory profile. It
// never returns an error: lookup failures are folded into the check
// result so the processor can report them as a terminal reason.
func (s *senderService) Authorize(ctx context.Context, rawFrom string) *domain.SenderCheck {
	email := extraction.ExtractEmailAddress(rawFrom)

	profile, err := s.profileRepo.GetApprovedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.SenderCheck{Valid: false, Error: "Email not found or user not approved"}
		}
		logger.Error("Sender lookup failed", "email", email, "error", err)
		return &domain.SenderCheck{Valid: false, Error: fmt.Sprintf("Database error: %s", err.Error())}
	}

	if !profile.EmailProcessingEnabled {
		return &domain.SenderCheck{Valid: false, Error: "Email processing disabled for this user"}
	}

	return &domain.SenderCheck{Valid: true, Profile: profile}
}
