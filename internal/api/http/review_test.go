package httpapi_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/service"
)

func TestHandleApproveGuest(t *testing.T) {
	guestData := domain.ExtractedGuest{
		Name:             "Bob Smith",
		VisitDate:        "2025-06-01",
		EstimatedArrival: "14:30",
		Organization:     "Acme Corp",
		FloorAccess:      "Floor 3",
	}

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		caller := approvedProfile("Acme Corp")
		token := env.authorize(caller)
		env.review.On("Approve", mockAnyContext, caller.UserID, int64(7), guestData).
			Return(&domain.Guest{ID: 42, Name: "Bob Smith"}, nil)

		req := postJSON("/api/email-guests/approve/7", map[string]any{
			"userId":    caller.UserID.String(),
			"guestData": guestData,
		})
		req.Header.Set("Authorization", token)

		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Guest approved and created successfully", body["message"])
		env.review.AssertExpectations(t)
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		env := newTestEnv()
		caller := approvedProfile("Acme Corp")
		token := env.authorize(caller)
		env.review.On("Approve", mockAnyContext, caller.UserID, int64(99), mock.Anything).
			Return(nil, service.ErrRecordNotFound)

		req := postJSON("/api/email-guests/approve/99", map[string]any{
			"userId":    caller.UserID.String(),
			"guestData": guestData,
		})
		req.Header.Set("Authorization", token)

		rec := env.do(req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email record not found")
	})

	t.Run("AlreadyProcessed", func(t *testing.T) {
		env := newTestEnv()
		caller := approvedProfile("Acme Corp")
		token := env.authorize(caller)
		env.review.On("Approve", mockAnyContext, caller.UserID, int64(7), mock.Anything).
			Return(nil, service.ErrAlreadyProcessed)

		req := postJSON("/api/email-guests/approve/7", map[string]any{
			"userId":    caller.UserID.String(),
			"guestData": guestData,
		})
		req.Header.Set("Authorization", token)

		rec := env.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Record already processed")
	})

	t.Run("MissingGuestData", func(t *testing.T) {
		env := newTestEnv()
		caller := approvedProfile("Acme Corp")
		token := env.authorize(caller)

		req := postJSON("/api/email-guests/approve/7", map[string]any{
			"userId": caller.UserID.String(),
		})
		req.Header.Set("Authorization", token)

		rec := env.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRejectGuest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		caller := approvedProfile("Acme Corp")
		token := env.authorize(caller)
		env.review.On("Reject", mockAnyContext, caller.UserID, int64(7), "wrong date").Return(nil)

		req := postJSON("/api/email-guests/reject/7", map[string]any{
			"userId": caller.UserID.String(),
			"reason": "wrong date",
		})
		req.Header.Set("Authorization", token)

		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Guest request rejected")
		env.review.AssertExpectations(t)
	})
}

func TestHandleProcessingStats(t *testing.T) {
	env := newTestEnv()
	caller := approvedProfile("Acme Corp")
	token := env.authorize(caller)
	env.review.On("Stats", mockAnyContext, caller.UserID).
		Return(&domain.ProcessingStats{TotalEmailsProcessed: 12, ApprovedCount: 9}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/email-guests/stats/"+caller.UserID.String(), nil)
	req.Header.Set("Authorization", token)

	rec := env.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(12), stats["total_emails_processed"])
}
