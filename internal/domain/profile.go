package domain

import "github.com/google/uuid"

type AuthenticationStatus string

const (
	AuthStatusPending  AuthenticationStatus = "Pending"
	AuthStatusApproved AuthenticationStatus = "Approved"
	AuthStatusDenied   AuthenticationStatus = "Denied"
)

// DefaultDailyEmailLimit applies when a profile has no configured limit.
const DefaultDailyEmailLimit = 10

// Profile is a directory entry from the portal's user directory. The
// pipeline only reads profiles; they are owned by the sign-up flow.
type Profile struct {
	UserID                  uuid.UUID            `json:"user_id"`
	Email                   string               `json:"email"`
	FullName                string               `json:"full_name"`
	Organization            string               `json:"organization"`
	AuthenticationStatus    AuthenticationStatus `json:"authentication_status"`
	EmailProcessingEnabled  bool                 `json:"email_processing_enabled"`
	MaxDailyEmailProcessing int32                `json:"max_daily_email_processing"`
	CreatedOn               string               `json:"created_on"`
}

// SenderCheck is the outcome of resolving and authorizing a raw
// "From" header against the directory.
type SenderCheck struct {
	Valid   bool     `json:"valid"`
	Profile *Profile `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// QuotaStatus reports a user's daily email-processing allowance.
type QuotaStatus struct {
	CanProcess   bool   `json:"can_process"`
	CurrentCount int32  `json:"current_count"`
	DailyLimit   int32  `json:"daily_limit"`
	Remaining    int32  `json:"remaining"`
	Error        string `json:"error,omitempty"`
}
