// internal/app/features/challenges/types.go
package challenges

import "github.com/dalemusser/ecotrack/internal/domain/models"

// createRequest is the accepted body for POST /api/challenges. There is no
// createdBy field here on purpose: the owner comes from the verified token,
// never the body.
type createRequest struct {
	Title               string                `json:"title"`
	Category            string                `json:"category"`
	Description         string                `json:"description"`
	Duration            int                   `json:"duration"`
	Target              string                `json:"target"`
	HowToParticipate    []string              `json:"howToParticipate"`
	EnvironmentalImpact string                `json:"environmentalImpact"`
	CommunityGoal       *models.CommunityGoal `json:"communityGoal"`
	ImageURL            string                `json:"imageUrl"`
	SecondaryTag        string                `json:"secondaryTag"`
}

// updateRequest is the accepted body for PATCH /api/challenges/{id}. Absent
// fields stay untouched; createdBy and participants are not patchable.
type updateRequest struct {
	Title               *string               `json:"title"`
	Category            *string               `json:"category"`
	Description         *string               `json:"description"`
	Duration            *int                  `json:"duration"`
	Target              *string               `json:"target"`
	HowToParticipate    *[]string             `json:"howToParticipate"`
	EnvironmentalImpact *string               `json:"environmentalImpact"`
	CommunityGoal       *models.CommunityGoal `json:"communityGoal"`
	ImageURL            *string               `json:"imageUrl"`
	SecondaryTag        *string               `json:"secondaryTag"`
}
