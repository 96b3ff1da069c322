package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/service"
)

func (s *Server) handlePendingGuests(w http.ResponseWriter, r *http.Request) {
	userIDStr := mux.Vars(r)["userId"]

	if !canAccessUser(callerProfile(r), userIDStr) {
		writeError(w, http.StatusForbidden, "Forbidden: Access denied to this user data")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	records, err := s.review.ListPending(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch pending guests")
		return
	}
	if records == nil {
		records = []domain.ProcessedEmail{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"pending_guests": records,
		"count":          len(records),
	})
}

type approveGuestRequest struct {
	UserID    string                `json:"userId"`
	GuestData *domain.ExtractedGuest `json:"guestData"`
}

func (s *Server) handleApproveGuest(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.ParseInt(mux.Vars(r)["recordId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req approveGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GuestData == nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: recordId, guestData, userId")
		return
	}

	if !canAccessUser(callerProfile(r), req.UserID) {
		writeError(w, http.StatusForbidden, "Forbidden: Access denied to this user data")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	guest, err := s.review.Approve(r.Context(), userID, recordID, *req.GuestData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "Email record not found")
		case errors.Is(err, service.ErrAlreadyProcessed):
			writeError(w, http.StatusBadRequest, "Record already processed")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to approve guest")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Guest approved and created successfully",
		"guest":   guest,
	})
}

type rejectGuestRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

func (s *Server) handleRejectGuest(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.ParseInt(mux.Vars(r)["recordId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req rejectGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: recordId, userId")
		return
	}

	if !canAccessUser(callerProfile(r), req.UserID) {
		writeError(w, http.StatusForbidden, "Forbidden: Access denied to this user data")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := s.review.Reject(r.Context(), userID, recordID, req.Reason); err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "Email record not found")
		case errors.Is(err, service.ErrAlreadyProcessed):
			writeError(w, http.StatusBadRequest, "Record already processed")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to reject guest")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Guest request rejected",
	})
}

func (s *Server) handleProcessingStats(w http.ResponseWriter, r *http.Request) {
	userIDStr := mux.Vars(r)["userId"]

	if !canAccessUser(callerProfile(r), userIDStr) {
		writeError(w, http.StatusForbidden, "Forbidden: Access denied to this user data")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	stats, err := s.review.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}
