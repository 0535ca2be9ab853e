// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateChallenge inserts a challenge owned by createdBy and returns it.
func (f *Fixtures) CreateChallenge(ctx context.Context, title, createdBy string) models.Challenge {
	f.t.Helper()

	now := time.Now().UTC()
	ch := models.Challenge{
		ID:               primitive.NewObjectID(),
		Title:            title,
		TitleCI:          text.Fold(title),
		Category:         "waste",
		Description:      "Test challenge",
		Duration:         30,
		HowToParticipate: []string{"step one"},
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
		EndsAt:           now.Add(30 * 24 * time.Hour),
	}
	if _, err := f.db.Collection("challenges").InsertOne(ctx, ch); err != nil {
		f.t.Fatalf("insert challenge fixture: %v", err)
	}
	return ch
}

// CreateEvent inserts an event with the given capacity and attendee count.
func (f *Fixtures) CreateEvent(ctx context.Context, title, organizer string, max, current int) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.Event{
		ID:                  primitive.NewObjectID(),
		Title:               title,
		TitleCI:             text.Fold(title),
		Description:         "Test event",
		Date:                now.Add(48 * time.Hour),
		Location:            "Test Park",
		Organizer:           organizer,
		MaxParticipants:     max,
		CurrentParticipants: current,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := f.db.Collection("events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("insert event fixture: %v", err)
	}
	return e
}

// CreateTip inserts a tip authored by author.
func (f *Fixtures) CreateTip(ctx context.Context, title, author string, upvotes int) models.Tip {
	f.t.Helper()

	now := time.Now().UTC()
	tip := models.Tip{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Content:   "Test tip content",
		Category:  "energy",
		Author:    author,
		Upvotes:   upvotes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("tips").InsertOne(ctx, tip); err != nil {
		f.t.Fatalf("insert tip fixture: %v", err)
	}
	return tip
}

// CreateMembership inserts a user_challenges row linking email to the
// challenge.
func (f *Fixtures) CreateMembership(ctx context.Context, email string, ch models.Challenge, role string) models.UserChallenge {
	f.t.Helper()

	uc := models.UserChallenge{
		ID:             primitive.NewObjectID(),
		Email:          email,
		ChallengeID:    ch.ID,
		ChallengeTitle: ch.Title,
		ImageURL:       ch.ImageURL,
		Category:       ch.Category,
		Role:           role,
		Status:         models.StatusNotStarted,
		JoinDate:       time.Now().UTC(),
	}
	if role == models.RoleCreator {
		uc.Status = models.StatusCreated
	}
	if _, err := f.db.Collection("user_challenges").InsertOne(ctx, uc); err != nil {
		f.t.Fatalf("insert membership fixture: %v", err)
	}
	return uc
}
