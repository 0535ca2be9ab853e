// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail fast.

The unique (email, challenge_id) index on user_challenges is load-bearing:
it is what makes duplicate-join prevention hold under concurrent requests,
instead of the check-then-insert sequence alone.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureChallenges(ctx, db); err != nil {
		problems = append(problems, "challenges: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}
	if err := ensureTips(ctx, db); err != nil {
		problems = append(problems, "tips: "+err.Error())
	}
	if err := ensureUserChallenges(ctx, db); err != nil {
		problems = append(problems, "user_challenges: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("indexes ensured",
		zap.Strings("collections", []string{"challenges", "events", "tips", "user_challenges"}))
	return nil
}

func ensureChallenges(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db.Collection("challenges"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
		{
			Keys:    bson.D{{Key: "ends_at", Value: 1}},
			Options: options.Index().SetName("ends_at"),
		},
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetName("title_ci"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db.Collection("events"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("date_asc"),
		},
		{
			Keys:    bson.D{{Key: "organizer", Value: 1}},
			Options: options.Index().SetName("organizer"),
		},
	})
}

func ensureTips(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db.Collection("tips"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "upvotes", Value: -1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("upvotes_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
		{
			Keys:    bson.D{{Key: "author", Value: 1}},
			Options: options.Index().SetName("author"),
		},
	})
}

func ensureUserChallenges(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db.Collection("user_challenges"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "challenge_id", Value: 1}},
			Options: options.Index().SetName("email_challenge_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "challenge_id", Value: 1}},
			Options: options.Index().SetName("challenge_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "join_date", Value: -1}},
			Options: options.Index().SetName("email_join_date"),
		},
	})
}

func createAll(ctx context.Context, c *mongo.Collection, models []mongo.IndexModel) error {
	_, err := c.Indexes().CreateMany(ctx, models)
	if err != nil && isOptionsConflictErr(err) {
		// An index with the same keys exists under another name or with
		// different options; leave it alone rather than failing startup.
		return nil
	}
	return err
}

// Mongo/DocDB returns IndexOptionsConflict when an index with the same keys
// already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
