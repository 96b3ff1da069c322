// Package httpapi exposes the portal backend over HTTP: the public
// email-processing webhook plus the authenticated review, arrival and
// admin endpoints used by the dashboard.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"sric-access-backend/internal/repository"
	"sric-access-backend/internal/security"
	"sric-access-backend/internal/service"
)

const securityOrganization = "Security"

type Server struct {
	processor         service.ProcessorService
	review            service.GuestReviewService
	notifier          service.NotificationService
	admin             service.AdminService
	profiles          repository.ProfileRepository
	guests            repository.GuestRepository
	tokens            security.TokenManager
	adminPasswordHash string
}

func NewServer(
	processor service.ProcessorService,
	review service.GuestReviewService,
	notifier service.NotificationService,
	admin service.AdminService,
	profiles repository.ProfileRepository,
	guests repository.GuestRepository,
	tokens security.TokenManager,
	adminPasswordHash string,
) *Server {
	return &Server{
		processor:         processor,
		review:            review,
		notifier:          notifier,
		admin:             admin,
		profiles:          profiles,
		guests:            guests,
		tokens:            tokens,
		adminPasswordHash: adminPasswordHash,
	}
}

// RegisterRoutes attaches all API routes to the router.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/process-email", s.handleProcessEmail).Methods(http.MethodPost)

	r.HandleFunc("/api/email-guests/pending/{userId}", s.authenticate(s.handlePendingGuests)).Methods(http.MethodGet)
	r.HandleFunc("/api/email-guests/approve/{recordId}", s.authenticate(s.handleApproveGuest)).Methods(http.MethodPost)
	r.HandleFunc("/api/email-guests/reject/{recordId}", s.authenticate(s.handleRejectGuest)).Methods(http.MethodPost)
	r.HandleFunc("/api/email-guests/stats/{userId}", s.authenticate(s.handleProcessingStats)).Methods(http.MethodGet)

	r.HandleFunc("/api/notify-arrival", s.authenticate(s.handleNotifyArrival)).Methods(http.MethodPost)
	r.HandleFunc("/api/verify-admin", s.authenticate(s.handleVerifyAdmin)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/email-limits", s.authenticate(s.handleSetEmailLimits)).Methods(http.MethodPost)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "SRIC Access Backend",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
