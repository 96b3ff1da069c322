package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"sric-access-backend/internal/logger"
)

type notifyArrivalRequest struct {
	GuestID       *int64 `json:"guestId"`
	ArrivalStatus *bool  `json:"arrivalStatus"`
}

// handleNotifyArrival sends the inviter an email when security checks
// their guest in. Email delivery failure is reported as a partial
// success; the check-in itself already happened on the front end.
func (s *Server) handleNotifyArrival(w http.ResponseWriter, r *http.Request) {
	var req notifyArrivalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GuestID == nil || req.ArrivalStatus == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: guestId and arrivalStatus")
		return
	}

	// Only arrivals trigger an email; departures are just noted.
	if !*req.ArrivalStatus {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "No email sent - guest departure noted",
			"guestId": *req.GuestID,
		})
		return
	}

	guest, err := s.guests.GetByID(r.Context(), *req.GuestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Guest not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch guest")
		return
	}

	inviter, err := s.profiles.GetByUserID(r.Context(), guest.InviterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Inviter profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch inviter")
		return
	}
	if inviter.Email == "" {
		writeError(w, http.StatusBadRequest, "Inviter email not configured")
		return
	}

	if err := s.notifier.SendArrivalNotification(r.Context(), inviter.Email, inviter.FullName, guest); err != nil {
		logger.Error("Arrival notification failed", "guest_id", guest.ID, "recipient", inviter.Email, "error", err)
		writeJSON(w, http.StatusMultiStatus, map[string]any{
			"message":   "Guest arrival noted, but email notification failed",
			"guestId":   guest.ID,
			"emailSent": false,
			"error":     "Email delivery failed",
		})
		return
	}

	logger.Info("Arrival notification sent", "guest_id", guest.ID, "recipient", inviter.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Arrival notification sent successfully",
		"guestId":   guest.ID,
		"emailSent": true,
		"recipient": inviter.Email,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
