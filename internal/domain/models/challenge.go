// internal/domain/models/challenge.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityGoal tracks the collective target attached to a challenge.
// Progress and percentage are maintained by the community, not derived.
type CommunityGoal struct {
	Goal            string  `bson:"goal" json:"goal"`
	CurrentProgress int     `bson:"current_progress" json:"currentProgress"`
	Percentage      float64 `bson:"percentage" json:"percentage"`
}

// Challenge is an environmental challenge users can join.
//
// NOTE:
//   - Participants is a denormalized counter; the authoritative join between
//     users and challenges lives in the user_challenges collection.
//   - CreatedBy is set once at creation from the authenticated principal and
//     is never updated afterward. It is the sole authority for update/delete.
//   - EndsAt is CreatedAt + Duration days, stamped at write time so the
//     active/past list partition stays a plain indexed range query.
type Challenge struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	Title               string             `bson:"title" json:"title"`
	TitleCI             string             `bson:"title_ci" json:"-"`
	Category            string             `bson:"category" json:"category"`
	Description         string             `bson:"description" json:"description"`
	Duration            int                `bson:"duration" json:"duration"` // days
	Target              string             `bson:"target" json:"target"`
	Participants        int                `bson:"participants" json:"participants"`
	HowToParticipate    []string           `bson:"how_to_participate" json:"howToParticipate"`
	EnvironmentalImpact string             `bson:"environmental_impact" json:"environmentalImpact"`
	CommunityGoal       CommunityGoal      `bson:"community_goal" json:"communityGoal"`
	ImageURL            string             `bson:"image_url" json:"imageUrl"`
	SecondaryTag        string             `bson:"secondary_tag" json:"secondaryTag"`

	CreatedBy string `bson:"created_by" json:"createdBy"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	EndsAt    time.Time `bson:"ends_at" json:"endsAt"`
}
