// internal/app/store/queries/memberchallenges/memberchallenges.go
//
// Read-side aggregation over user_challenges joined with challenges. The
// membership rows carry denormalized title/image/category for cheap renders;
// this query embeds the live challenge document for callers that need the
// current state (participant counts, community goal progress).
package memberchallenges

import (
	"context"
	"errors"

	"github.com/dalemusser/ecotrack/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no membership matches the predicate.
var ErrNotFound = errors.New("membership not found")

// MemberChallenge is a membership row with the live challenge embedded.
// Challenge is nil when the underlying challenge has been deleted out from
// under the membership (possible only for rows written before cascading
// deletes; the aggregation keeps the row rather than hiding it).
type MemberChallenge struct {
	models.UserChallenge `bson:",inline"`
	Challenge            *models.Challenge `bson:"challenge" json:"challenge,omitempty"`
}

type Query struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Query {
	return &Query{c: db.Collection("user_challenges")}
}

func lookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "challenges",
			"localField":   "challenge_id",
			"foreignField": "_id",
			"as":           "challenge",
		}},
		{"$unwind": bson.M{
			"path":                       "$challenge",
			"preserveNullAndEmptyArrays": true,
		}},
	}
}

// ListForEmail returns the principal's memberships newest-join-first, each
// with its challenge embedded.
func (q *Query) ListForEmail(ctx context.Context, email string) ([]MemberChallenge, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"email": email}},
	}
	pipeline = append(pipeline, lookupStages()...)
	pipeline = append(pipeline, bson.M{"$sort": bson.D{
		{Key: "join_date", Value: -1},
		{Key: "_id", Value: -1},
	}})

	cur, err := q.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []MemberChallenge{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetForEmail returns one membership by id, scoped to the principal. A row
// owned by someone else reports NotFound, same as an absent row.
func (q *Query) GetForEmail(ctx context.Context, email string, id primitive.ObjectID) (MemberChallenge, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id, "email": email}},
	}
	pipeline = append(pipeline, lookupStages()...)

	cur, err := q.c.Aggregate(ctx, pipeline)
	if err != nil {
		return MemberChallenge{}, err
	}
	defer cur.Close(ctx)

	var out []MemberChallenge
	if err := cur.All(ctx, &out); err != nil {
		return MemberChallenge{}, err
	}
	if len(out) == 0 {
		return MemberChallenge{}, ErrNotFound
	}
	return out[0], nil
}
