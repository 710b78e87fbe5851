package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"microblog/internal/models"
)

// PostFilter narrows post queries. Nil fields match everything.
type PostFilter struct {
	Author  *primitive.ObjectID
	Allowed *bool
}

func (f PostFilter) query() bson.M {
	q := bson.M{}
	if f.Author != nil {
		q["author"] = *f.Author
	}
	if f.Allowed != nil {
		q["allowed"] = *f.Allowed
	}
	return q
}

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post := &models.Post{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// List returns newest posts first.
func (r *PostRepository) List(ctx context.Context, filter PostFilter, skip, limit int64) ([]*models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []*models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	return r.col.CountDocuments(ctx, filter.query())
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}

	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
