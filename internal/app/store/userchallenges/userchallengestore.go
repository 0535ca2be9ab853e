// internal/app/store/userchallenges/userchallengestore.go
package userchallengestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/ecotrack/internal/app/system/txn"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrChallengeNotFound is returned when the referenced challenge is absent.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrAlreadyJoined is returned when a membership for (email, challenge)
	// already exists. It is a client error, not an idempotent success.
	ErrAlreadyJoined = errors.New("already joined this challenge")
	// ErrNotFound is returned when no membership matches the predicate.
	ErrNotFound = errors.New("membership not found")
)

// Store coordinates the user_challenges collection and the membership side of
// the challenges collection (the denormalized participant counter).
type Store struct {
	c          *mongo.Collection
	challenges *mongo.Collection
	client     *mongo.Client
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:          db.Collection("user_challenges"),
		challenges: db.Collection("challenges"),
		client:     db.Client(),
	}
}

// Join creates a participant membership for (email, challengeID) and
// increments the challenge's participant counter.
//
// Order of checks: challenge existence first (NotFound), then the membership
// insert. Duplicate prevention rests on the unique (email, challenge_id)
// index — not on a read-before-write — so two concurrent joins cannot both
// succeed. Insert and counter increment run inside a transaction where the
// deployment supports one; on standalone servers the unique index still
// guarantees at most one membership row.
func (s *Store) Join(ctx context.Context, email string, challengeID primitive.ObjectID) (models.UserChallenge, error) {
	var ch models.Challenge
	if err := s.challenges.FindOne(ctx, bson.M{"_id": challengeID}).Decode(&ch); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.UserChallenge{}, ErrChallengeNotFound
		}
		return models.UserChallenge{}, err
	}

	uc := models.UserChallenge{
		ID:             primitive.NewObjectID(),
		Email:          email,
		ChallengeID:    challengeID,
		ChallengeTitle: ch.Title,
		ImageURL:       ch.ImageURL,
		Category:       ch.Category,
		Role:           models.RoleParticipant,
		Status:         models.StatusNotStarted,
		Progress:       0,
		JoinDate:       time.Now().UTC(),
	}

	err := txn.WithTransaction(ctx, s.client, func(ctx context.Context) error {
		if _, err := s.c.InsertOne(ctx, uc); err != nil {
			if wafflemongo.IsDup(err) {
				return ErrAlreadyJoined
			}
			return err
		}
		_, err := s.challenges.UpdateByID(ctx, challengeID, bson.M{"$inc": bson.M{"participants": 1}})
		return err
	})
	if err != nil {
		return models.UserChallenge{}, err
	}
	return uc, nil
}

// AddCreator stamps the creator's membership row as a side effect of
// challenge creation. The participant counter is not touched: the creator is
// not a participant, and the original contract counts only joins.
func (s *Store) AddCreator(ctx context.Context, email string, ch models.Challenge) (models.UserChallenge, error) {
	uc := models.UserChallenge{
		ID:             primitive.NewObjectID(),
		Email:          email,
		ChallengeID:    ch.ID,
		ChallengeTitle: ch.Title,
		ImageURL:       ch.ImageURL,
		Category:       ch.Category,
		Role:           models.RoleCreator,
		Status:         models.StatusCreated,
		Progress:       ch.CommunityGoal.CurrentProgress,
		JoinDate:       time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, uc); err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserChallenge{}, ErrAlreadyJoined
		}
		return models.UserChallenge{}, err
	}
	return uc, nil
}

// ProgressPatch is the partial update for a membership row. Nil fields are
// left untouched.
type ProgressPatch struct {
	Status   *string
	Progress *int
}

// UpdateProgress mutates the membership matched by id AND email. Ownership is
// folded into the lookup predicate: a row belonging to someone else is
// indistinguishable from an absent row, so the caller reports NotFound, never
// Forbidden.
func (s *Store) UpdateProgress(ctx context.Context, email string, id primitive.ObjectID, p ProgressPatch) error {
	set := bson.M{}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Progress != nil {
		set["progress"] = *p.Progress
	}
	if len(set) == 0 {
		// Nothing to change; still report NotFound for rows the caller
		// cannot see.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": id, "email": email})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "email": email}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByChallenge removes every membership row referencing the challenge.
// Used by the cascading challenge delete. Returns the number removed.
func (s *Store) DeleteByChallenge(ctx context.Context, challengeID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"challenge_id": challengeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountForChallenge returns how many membership rows reference the challenge.
func (s *Store) CountForChallenge(ctx context.Context, challengeID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"challenge_id": challengeID})
}
