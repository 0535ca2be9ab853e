// internal/app/store/events/eventstore.go
package eventstore

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

var (
	// ErrNotFound is returned when no event matches the given id.
	ErrNotFound = errors.New("event not found")
	// ErrFull is returned when a join would push the event past capacity.
	ErrFull = errors.New("event is full")
	// ErrCapacityBelowCurrent is returned when a patch would set the
	// capacity below the number of participants already registered.
	ErrCapacityBelowCurrent = errors.New("max participants below current participants")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// Create inserts a new event. The organizer has already been stamped from the
// authenticated principal; the participant counter always starts at zero.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.TitleCI = text.Fold(e.Title)
	e.CurrentParticipants = 0
	if e.MaxParticipants < 0 {
		e.MaxParticipants = 0
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return e, nil
}

// ListFilter controls the event list query. Upcoming and Past partition by
// the event date relative to now; Search matches title/description/location.
type ListFilter struct {
	Upcoming bool
	Past     bool
	Search   string
}

// List returns events soonest-first.
func (s *Store) List(ctx context.Context, f ListFilter, page paging.Params) ([]models.Event, error) {
	filter := bson.M{}
	now := time.Now().UTC()
	if f.Upcoming {
		filter["date"] = bson.M{"$gte": now}
	} else if f.Past {
		filter["date"] = bson.M{"$lt": now}
	}
	filter = search.Merge(filter, search.AnyField(f.Search, "title", "description", "location"))
	filter = search.Merge(filter, page.Window(1))

	find := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(page.Limit))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields is the partial patch for an event. Organizer and
// CurrentParticipants are deliberately absent.
type UpdateFields struct {
	Title           *string
	Description     *string
	Date            *time.Time
	Location        *string
	MaxParticipants *int
}

// Update applies the supplied fields. Lowering MaxParticipants below the
// live counter is rejected with a conditional update so the capacity
// invariant cannot be broken by a racing join.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, u UpdateFields) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		set["title"] = *u.Title
		set["title_ci"] = text.Fold(*u.Title)
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Date != nil {
		set["date"] = (*u.Date).UTC()
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}

	filter := bson.M{"_id": id}
	if u.MaxParticipants != nil {
		set["max_participants"] = *u.MaxParticipants
		filter["current_participants"] = bson.M{"$lte": *u.MaxParticipants}
	}

	res, err := s.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if u.MaxParticipants == nil {
			return ErrNotFound
		}
		// Disambiguate: absent event vs. capacity condition failing.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrCapacityBelowCurrent
	}
	return nil
}

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

// Join registers one attendee. The capacity check lives in the update filter
// itself, so two concurrent joins racing for the last slot cannot both win:
// the counter never exceeds max_participants.
func (s *Store) Join(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":   id,
			"$expr": bson.M{"$lt": bson.A{"$current_participants", "$max_participants"}},
		},
		bson.M{
			"$inc": bson.M{"current_participants": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrFull
	}
	return nil
}
