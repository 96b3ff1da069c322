package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sric-access-backend/internal/service"
)

type verifyAdminRequest struct {
	Password string `json:"password"`
}

// handleVerifyAdmin confirms the shared admin password for the
// security desk. The caller must already be an approved Security
// member; the password is a second factor, never the only gate.
func (s *Server) handleVerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var req verifyAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	if callerProfile(r).Organization != securityOrganization {
		writeError(w, http.StatusForbidden, "Insufficient privileges")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"verified": true})
}

type setEmailLimitsRequest struct {
	UserID   string `json:"userId"`
	Enabled  *bool  `json:"enabled"`
	MaxDaily int32  `json:"maxDaily"`
}

func (s *Server) handleSetEmailLimits(w http.ResponseWriter, r *http.Request) {
	if callerProfile(r).Organization != securityOrganization {
		writeError(w, http.StatusForbidden, "Insufficient privileges")
		return
	}

	var req setEmailLimitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: userId, enabled")
		return
	}
	if req.MaxDaily <= 0 {
		writeError(w, http.StatusBadRequest, "maxDaily must be positive")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := s.admin.SetEmailLimits(r.Context(), userID, *req.Enabled, req.MaxDaily); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update email limits")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email processing limits updated",
	})
}
