package httpapi

import (
	"encoding/json"
	"net/http"

	"sric-access-backend/internal/logger"
)

type processEmailRequest struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// handleProcessEmail is the public webhook for inbound emails. The
// response body is the processor's result object verbatim; callers
// depend on its {success, message, data, errors} shape.
func (s *Server) handleProcessEmail(w http.ResponseWriter, r *http.Request) {
	var req processEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content := req.Text
	if content == "" {
		content = req.HTML
	}
	if req.From == "" || content == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: from, and email content")
		return
	}

	logger.Info("Processing inbound email", "from", req.From, "subject", req.Subject)

	result := s.processor.ProcessIncomingEmail(r.Context(), req.From, req.Subject, content)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
		logger.Info("Email processing failed", "from", req.From, "message", result.Message)
	} else {
		logger.Info("Email processed successfully", "from", req.From, "message", result.Message)
	}
	writeJSON(w, status, result)
}
