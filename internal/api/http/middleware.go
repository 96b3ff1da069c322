package httpapi

import (
	"context"
	"net/http"
	"strings"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
)

type contextKey string

const profileContextKey contextKey = "profile"

// authenticate validates the Bearer token, loads the caller's profile
// and requires an Approved account before invoking the handler.
func (s *Server) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Unauthorized: Missing or invalid authorization header")
			return
		}

		claims, err := s.tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid or expired token")
			return
		}

		profile, err := s.profiles.GetByUserID(r.Context(), userID)
		if err != nil {
			logger.Warn("Profile lookup failed during authentication", "user_id", userID, "error", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized: User profile not found")
			return
		}

		if profile.AuthenticationStatus != domain.AuthStatusApproved {
			writeError(w, http.StatusForbidden, "Forbidden: User account not approved")
			return
		}

		ctx := context.WithValue(r.Context(), profileContextKey, profile)
		next(w, r.WithContext(ctx))
	}
}

// callerProfile returns the authenticated profile from the request
// context. Only valid inside handlers wrapped by authenticate.
func callerProfile(r *http.Request) *domain.Profile {
	profile, _ := r.Context().Value(profileContextKey).(*domain.Profile)
	return profile
}

// canAccessUser reports whether the caller may touch another user's
// records: their own, or anything when they belong to Security.
func canAccessUser(caller *domain.Profile, userID string) bool {
	if caller == nil {
		return false
	}
	return caller.UserID.String() == userID || caller.Organization == securityOrganization
}
