// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a scheduled community event with a bounded capacity.
// Invariant: 0 <= CurrentParticipants <= MaxParticipants; the join path
// enforces this with a conditional update, never a read-then-write.
type Event struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	Title               string             `bson:"title" json:"title"`
	TitleCI             string             `bson:"title_ci" json:"-"`
	Description         string             `bson:"description" json:"description"`
	Date                time.Time          `bson:"date" json:"date"`
	Location            string             `bson:"location" json:"location"`
	Organizer           string             `bson:"organizer" json:"organizer"`
	MaxParticipants     int                `bson:"max_participants" json:"maxParticipants"`
	CurrentParticipants int                `bson:"current_participants" json:"currentParticipants"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
