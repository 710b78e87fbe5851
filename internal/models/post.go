package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is pending moderation until Allowed is set, either by an admin
// approval or by an author edit.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Allowed   bool               `bson:"allowed" json:"allowed"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
