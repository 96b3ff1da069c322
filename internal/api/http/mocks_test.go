package httpapi_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sric-access-backend/internal/domain"
)

// MockProcessorService
type MockProcessorService struct {
	mock.Mock
}

func (m *MockProcessorService) ProcessIncomingEmail(ctx context.Context, from, subject, content string) *domain.ProcessResult {
	args := m.Called(ctx, from, subject, content)
	return args.Get(0).(*domain.ProcessResult)
}

// MockGuestReviewService
type MockGuestReviewService struct {
	mock.Mock
}

func (m *MockGuestReviewService) ListPending(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessedEmail), args.Error(1)
}
func (m *MockGuestReviewService) Approve(ctx context.Context, userID uuid.UUID, recordID int64, guest domain.ExtractedGuest) (*domain.Guest, error) {
	args := m.Called(ctx, userID, recordID, guest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestReviewService) Reject(ctx context.Context, userID uuid.UUID, recordID int64, reason string) error {
	args := m.Called(ctx, userID, recordID, reason)
	return args.Error(0)
}
func (m *MockGuestReviewService) Stats(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessingStats), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendArrivalNotification(ctx context.Context, toEmail, toName string, guest *domain.Guest) error {
	args := m.Called(ctx, toEmail, toName, guest)
	return args.Error(0)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) SetEmailLimits(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error {
	args := m.Called(ctx, userID, enabled, maxDaily)
	return args.Error(0)
}

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
