package domain

import "github.com/google/uuid"

// Guest is a persisted visitor record. Created by the extraction
// pipeline or the manual approve flow; arrival_status is later flipped
// by the front-end check-in flow.
type Guest struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	VisitDate        string    `json:"visit_date"`
	EstimatedArrival string    `json:"estimated_arrival"`
	ArrivalStatus    bool      `json:"arrival_status"`
	FloorAccess      string    `json:"floor_access"`
	InviterID        uuid.UUID `json:"inviter_id"`
	Organization     string    `json:"organization"`
	RequesterEmail   string    `json:"requester_email"`
	CreatedOn        string    `json:"created_on"`
}
