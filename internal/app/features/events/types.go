// internal/app/features/events/types.go
package events

import "time"

// createRequest is the accepted body for POST /api/events. Organizer is
// stamped from the principal, never the body; currentParticipants always
// starts at zero.
type createRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"maxParticipants"`
}

// updateRequest is the accepted body for PATCH /api/events/{id}.
type updateRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Date            *time.Time `json:"date"`
	Location        *string    `json:"location"`
	MaxParticipants *int       `json:"maxParticipants"`
}
