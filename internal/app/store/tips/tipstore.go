// internal/app/store/tips/tipstore.go
package tipstore

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

// ErrNotFound is returned when no tip matches the given id.
var ErrNotFound = errors.New("tip not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tips")}
}

// Create inserts a new tip with the author already stamped from the
// authenticated principal. Upvotes always start at zero.
func (s *Store) Create(ctx context.Context, tip models.Tip) (models.Tip, error) {
	now := time.Now().UTC()
	tip.ID = primitive.NewObjectID()
	tip.TitleCI = text.Fold(tip.Title)
	tip.Upvotes = 0
	tip.CreatedAt = now
	tip.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, tip); err != nil {
		return models.Tip{}, err
	}
	return tip, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Tip, error) {
	var tip models.Tip
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&tip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Tip{}, ErrNotFound
		}
		return models.Tip{}, err
	}
	return tip, nil
}

// ListFilter controls the tip list query.
type ListFilter struct {
	Category string
	Search   string
}

// List returns tips most-upvoted first, ties broken newest-first.
func (s *Store) List(ctx context.Context, f ListFilter, page paging.Params) ([]models.Tip, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	filter = search.Merge(filter, search.AnyField(f.Search, "title", "content"))
	filter = search.Merge(filter, page.Window(-1))

	find := options.Find().
		SetSort(bson.D{
			{Key: "upvotes", Value: -1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(page.Limit))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Tip{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields is the partial patch for a tip. Author and Upvotes are
// deliberately absent; upvotes only move through Upvote.
type UpdateFields struct {
	Title    *string
	Content  *string
	Category *string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, u UpdateFields) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		set["title"] = *u.Title
		set["title_ci"] = text.Fold(*u.Title)
	}
	if u.Content != nil {
		set["content"] = *u.Content
	}
	if u.Category != nil {
		set["category"] = *u.Category
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

// Upvote increments the tip's upvote counter by one.
func (s *Store) Upvote(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"upvotes": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
