// internal/domain/models/tip.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tip is a community-submitted sustainability tip.
type Tip struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title"`
	TitleCI  string             `bson:"title_ci" json:"-"`
	Content  string             `bson:"content" json:"content"`
	Category string             `bson:"category" json:"category"`
	Author   string             `bson:"author" json:"author"`
	Upvotes  int                `bson:"upvotes" json:"upvotes"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
