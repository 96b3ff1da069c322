package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type adminService struct {
	profileRepo repository.ProfileRepository
}

func NewAdminService(profileRepo repository.ProfileRepository) AdminService {
	return &adminService{profileRepo: profileRepo}
}

func (s *adminService) SetEmailLimits(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error {
	if err := s.profileRepo.SetEmailProcessing(ctx, userID, enabled, maxDaily); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		return err
	}
	logger.Info("Updated email processing limits", "user_id", userID, "enabled", enabled, "max_daily", maxDaily)
	return nil
}
