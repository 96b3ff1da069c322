package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sric-access-backend/internal/domain"
)

func TestGuestReviewService_Approve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	pendingRecord := func() *domain.ProcessedEmail {
		return &domain.ProcessedEmail{
			ID:               5,
			UserID:           userID,
			SenderEmail:      "jane@acme.com",
			ProcessingStatus: domain.ProcessingStatusPending,
		}
	}

	guestData := domain.ExtractedGuest{
		Name:             "Bob Smith",
		VisitDate:        "2025-06-01",
		EstimatedArrival: "14:30",
		Organization:     "Acme Corp",
		FloorAccess:      "Floor 3",
	}

	t.Run("Success", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(pendingRecord(), nil)
		audits.On("MarkApproved", ctx, int64(5), int64(42), mock.AnythingOfType("time.Time")).Return(nil)

		guests := new(MockGuestRepo)
		guests.On("Create", ctx, mock.AnythingOfType("*domain.Guest")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Guest).ID = 42
			}).
			Return(nil)

		guest, err := NewGuestReviewService(audits, guests).Approve(ctx, userID, 5, guestData)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), guest.ID)
		assert.Equal(t, userID, guest.InviterID)
		assert.Equal(t, "jane@acme.com", guest.RequesterEmail)
		audits.AssertExpectations(t)
		guests.AssertExpectations(t)
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(nil, sql.ErrNoRows)

		_, err := NewGuestReviewService(audits, new(MockGuestRepo)).Approve(ctx, userID, 5, guestData)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("WrongOwner", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(pendingRecord(), nil)

		_, err := NewGuestReviewService(audits, new(MockGuestRepo)).Approve(ctx, uuid.New(), 5, guestData)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("AlreadyProcessed", func(t *testing.T) {
		record := pendingRecord()
		record.ProcessingStatus = domain.ProcessingStatusApproved

		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(record, nil)

		_, err := NewGuestReviewService(audits, new(MockGuestRepo)).Approve(ctx, userID, 5, guestData)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})
}

func TestGuestReviewService_Reject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	pendingRecord := &domain.ProcessedEmail{
		ID:               5,
		UserID:           userID,
		ProcessingStatus: domain.ProcessingStatusPending,
	}

	t.Run("WithReason", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(pendingRecord, nil)
		audits.On("MarkRejected", ctx, int64(5), "wrong date").Return(nil)

		err := NewGuestReviewService(audits, new(MockGuestRepo)).Reject(ctx, userID, 5, "wrong date")
		assert.NoError(t, err)
		audits.AssertExpectations(t)
	})

	t.Run("DefaultReason", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(5)).Return(pendingRecord, nil)
		audits.On("MarkRejected", ctx, int64(5), "Rejected by user").Return(nil)

		err := NewGuestReviewService(audits, new(MockGuestRepo)).Reject(ctx, userID, 5, "")
		assert.NoError(t, err)
		audits.AssertExpectations(t)
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		audits := new(MockProcessedEmailRepo)
		audits.On("GetByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

		err := NewGuestReviewService(audits, new(MockGuestRepo)).Reject(ctx, userID, 9, "")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
