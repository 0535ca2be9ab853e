// internal/domain/models/userchallenge.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership roles.
const (
	RoleCreator     = "creator"
	RoleParticipant = "participant"
)

// Membership statuses. StatusCreated marks the row stamped for a challenge's
// creator; participants start at StatusNotStarted and move through the
// in-progress states via PATCH /api/user-challenges/{id}.
const (
	StatusCreated    = "created"
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// UserChallenge is the authoritative join between a principal and a challenge.
// Exactly one document per (email, challenge_id), enforced by a unique index.
//
// ChallengeTitle, ImageURL, and Category are denormalized from the challenge
// at join time so membership lists render without a lookup; the embedded
// challenge aggregation is used when fresh data is required.
type UserChallenge struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	ChallengeID    primitive.ObjectID `bson:"challenge_id" json:"challengeId"`
	ChallengeTitle string             `bson:"challenge_title" json:"challengeTitle"`
	ImageURL       string             `bson:"image_url" json:"imageUrl"`
	Category       string             `bson:"category" json:"category"`
	Role           string             `bson:"role" json:"role"`     // "creator" | "participant"
	Status         string             `bson:"status" json:"status"` // see status constants
	Progress       int                `bson:"progress" json:"progress"`
	JoinDate       time.Time          `bson:"join_date" json:"joinDate"`
}
