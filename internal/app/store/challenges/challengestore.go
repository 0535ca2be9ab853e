// internal/app/store/challenges/challengestore.go
package challengestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/app/system/search"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no challenge matches the given id.
var ErrNotFound = errors.New("challenge not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("challenges")}
}

// Create inserts a new challenge, applying defaults for omitted optional
// fields and stamping timestamps. The caller has already set CreatedBy from
// the authenticated principal; nothing in the client body can override it.
func (s *Store) Create(ctx context.Context, ch models.Challenge) (models.Challenge, error) {
	now := time.Now().UTC()
	ch.ID = primitive.NewObjectID()
	ch.TitleCI = text.Fold(ch.Title)
	if ch.HowToParticipate == nil {
		ch.HowToParticipate = []string{}
	}
	if ch.Participants < 0 {
		ch.Participants = 0
	}
	ch.CreatedAt = now
	ch.UpdatedAt = now
	ch.EndsAt = endsAt(now, ch.Duration)

	if _, err := s.c.InsertOne(ctx, ch); err != nil {
		return models.Challenge{}, err
	}
	return ch, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Challenge, error) {
	var ch models.Challenge
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ch); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Challenge{}, ErrNotFound
		}
		return models.Challenge{}, err
	}
	return ch, nil
}

// ListFilter controls the challenge list query.
//   - Category: exact match
//   - Search: case-insensitive substring on title/description
//   - Status: "active" (ends_at in the future) or "past"; anything else lists all
type ListFilter struct {
	Category string
	Search   string
	Status   string
}

// List returns challenges newest-first.
func (s *Store) List(ctx context.Context, f ListFilter, page paging.Params) ([]models.Challenge, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	filter = search.Merge(filter, search.AnyField(f.Search, "title", "description"))

	switch f.Status {
	case "active":
		filter["ends_at"] = bson.M{"$gte": time.Now().UTC()}
	case "past":
		filter["ends_at"] = bson.M{"$lt": time.Now().UTC()}
	}
	filter = search.Merge(filter, page.Window(-1))

	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(page.Limit))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Challenge{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields is the partial patch for a challenge. Nil fields are left
// untouched. CreatedBy and Participants are deliberately absent: the owner is
// immutable and the counter belongs to the membership coordinator.
type UpdateFields struct {
	Title               *string
	Category            *string
	Description         *string
	Duration            *int
	Target              *string
	HowToParticipate    *[]string
	EnvironmentalImpact *string
	CommunityGoal       *models.CommunityGoal
	ImageURL            *string
	SecondaryTag        *string
}

// Update applies the supplied fields and stamps updated_at. When Duration
// changes, ends_at is recomputed from the stored created_at so the
// active/past partition stays truthful.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, u UpdateFields) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		set["title"] = *u.Title
		set["title_ci"] = text.Fold(*u.Title)
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Target != nil {
		set["target"] = *u.Target
	}
	if u.HowToParticipate != nil {
		set["how_to_participate"] = *u.HowToParticipate
	}
	if u.EnvironmentalImpact != nil {
		set["environmental_impact"] = *u.EnvironmentalImpact
	}
	if u.CommunityGoal != nil {
		set["community_goal"] = *u.CommunityGoal
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.SecondaryTag != nil {
		set["secondary_tag"] = *u.SecondaryTag
	}

	if u.Duration != nil {
		ch, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		set["duration"] = *u.Duration
		set["ends_at"] = endsAt(ch.CreatedAt, *u.Duration)
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a challenge. The caller is responsible for cascading the
// user_challenges cleanup (see the membership store).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncParticipants adjusts the denormalized participant counter.
func (s *Store) IncParticipants(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"participants": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func endsAt(createdAt time.Time, durationDays int) time.Time {
	if durationDays <= 0 {
		return createdAt
	}
	return createdAt.Add(time.Duration(durationDays) * 24 * time.Hour)
}
