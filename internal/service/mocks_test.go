package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sric-access-backend/internal/domain"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetApprovedByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) SetEmailProcessing(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error {
	args := m.Called(ctx, userID, enabled, maxDaily)
	return args.Error(0)
}

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

// MockProcessedEmailRepo
type MockProcessedEmailRepo struct {
	mock.Mock
}

func (m *MockProcessedEmailRepo) Create(ctx context.Context, record *domain.ProcessedEmail) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockProcessedEmailRepo) GetByID(ctx context.Context, id int64) (*domain.ProcessedEmail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessedEmail), args.Error(1)
}
func (m *MockProcessedEmailRepo) MarkApproved(ctx context.Context, id, guestID int64, processedAt time.Time) error {
	args := m.Called(ctx, id, guestID, processedAt)
	return args.Error(0)
}
func (m *MockProcessedEmailRepo) MarkRejected(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
func (m *MockProcessedEmailRepo) CountForUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int32, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockProcessedEmailRepo) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessedEmail), args.Error(1)
}
func (m *MockProcessedEmailRepo) StatsForUser(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

// MockExtractor
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, emailContent, senderEmail string) *domain.ExtractionResult {
	args := m.Called(ctx, emailContent, senderEmail)
	return args.Get(0).(*domain.ExtractionResult)
}
func (m *MockExtractor) ModelName() string {
	args := m.Called()
	return args.String(0)
}

// MockSenderService
type MockSenderService struct {
	mock.Mock
}

func (m *MockSenderService) Authorize(ctx context.Context, rawFrom string) *domain.SenderCheck {
	args := m.Called(ctx, rawFrom)
	return args.Get(0).(*domain.SenderCheck)
}

// MockQuotaService
type MockQuotaService struct {
	mock.Mock
}

func (m *MockQuotaService) Check(ctx context.Context, userID uuid.UUID, maxDaily int32) *domain.QuotaStatus {
	args := m.Called(ctx, userID, maxDaily)
	return args.Get(0).(*domain.QuotaStatus)
}
