package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"microblog/internal/apperr"
	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validators"
)

// FeedService holds post CRUD and the moderation workflow. A post starts
// pending (allowed=false) and becomes visible once an admin approves it;
// approving also promotes the author from "user" to "blogger".
type FeedService struct {
	posts    PostStore
	users    UserStore
	pageSize int64
}

func NewFeedService(posts PostStore, users UserStore, pageSize int) *FeedService {
	return &FeedService{
		posts:    posts,
		users:    users,
		pageSize: int64(pageSize),
	}
}

// ListPosts projects the feed for the viewer. Anonymous and plain users see
// published posts only; a blogger sees their own posts in any state; an
// admin sees everything. An empty viewerID means anonymous.
func (s *FeedService) ListPosts(ctx context.Context, viewerID string, page int) ([]*models.Post, int64, error) {
	filter := repository.PostFilter{}

	if viewerID == "" {
		published := true
		filter.Allowed = &published
	} else {
		viewer, err := s.viewer(ctx, viewerID)
		if err != nil {
			return nil, 0, err
		}

		switch viewer.Role {
		case models.RoleAdmin:
			// no filter, all posts in any state
		case models.RoleBlogger:
			author := viewer.ID
			filter.Author = &author
		default:
			// plain users read like anonymous viewers
			published := true
			filter.Allowed = &published
		}
	}

	return s.page(ctx, filter, page)
}

// ListPending returns posts awaiting approval. Admin only; the 401 for
// non-admins is kept for compatibility with existing clients.
func (s *FeedService) ListPending(ctx context.Context, viewerID string, page int) ([]*models.Post, int64, error) {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if !viewer.IsAdmin() {
		return nil, 0, apperr.Unauthorized("Not authorized!")
	}

	pending := false
	return s.page(ctx, repository.PostFilter{Allowed: &pending}, page)
}

// Approve publishes a post and promotes its author to blogger unless the
// author is already a blogger or an admin. Safe to repeat: re-approving a
// published post and re-promoting are both no-ops. The two writes are not
// transactional; a failure between them leaves the post published with the
// author unpromoted.
func (s *FeedService) Approve(ctx context.Context, postID, viewerID string) (*models.Post, error) {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() {
		return nil, apperr.Unauthorized("Not authorized!")
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.Allowed {
		post.Allowed = true
		if err := s.posts.Update(ctx, post); err != nil {
			return nil, err
		}
	}

	author, err := s.users.GetByID(ctx, post.Author)
	if err != nil {
		return nil, err
	}
	if author.Role == models.RoleUser {
		author.Role = models.RoleBlogger
		if err := s.users.Update(ctx, author); err != nil {
			return nil, err
		}
	}

	return post, nil
}

func (s *FeedService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.getPost(ctx, postID)
}

// CreatePost inserts a pending post and appends it to the author's post
// list. Returns the post and its author for the response envelope.
func (s *FeedService) CreatePost(ctx context.Context, authorID, title, content string) (*models.Post, *models.User, error) {
	if err := validatePostInput(title, content); err != nil {
		return nil, nil, err
	}

	author, err := s.viewer(ctx, authorID)
	if err != nil {
		return nil, nil, err
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		Author:  author.ID,
		Allowed: false,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, nil, err
	}

	author.Posts = append(author.Posts, post.ID)
	if err := s.users.Update(ctx, author); err != nil {
		return nil, nil, err
	}

	return post, author, nil
}

// UpdatePost overwrites title and content. Only the author may edit; the
// edit also marks the post published again, matching the behavior clients
// depend on.
func (s *FeedService) UpdatePost(ctx context.Context, postID, editorID, title, content string) (*models.Post, error) {
	if err := validatePostInput(title, content); err != nil {
		return nil, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author.Hex() != editorID {
		return nil, apperr.Forbidden("Not authorized!")
	}

	post.Title = title
	post.Content = content
	post.Allowed = true
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its reference in the author's post list.
func (s *FeedService) DeletePost(ctx context.Context, postID, editorID string) (*models.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author.Hex() != editorID {
		return nil, apperr.Forbidden("Not authorized!")
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, post.Author)
	if err != nil {
		return nil, err
	}
	for i, id := range author.Posts {
		if id == post.ID {
			author.Posts = append(author.Posts[:i], author.Posts[i+1:]...)
			break
		}
	}
	if err := s.users.Update(ctx, author); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *FeedService) page(ctx context.Context, filter repository.PostFilter, page int) ([]*models.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	posts, err := s.posts.List(ctx, filter, int64(page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(posts) == 0 {
		return nil, 0, apperr.NotFound("No posts found.")
	}

	return posts, total, nil
}

func (s *FeedService) getPost(ctx context.Context, postID string) (*models.Post, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("Could not find post: %s.", postID))
	}

	post, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(fmt.Sprintf("Could not find post: %s.", postID))
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// viewer resolves an authenticated user id from a token. A valid token for
// a since-deleted user is treated the same as a bad token.
func (s *FeedService) viewer(ctx context.Context, viewerID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(viewerID)
	if err != nil {
		return nil, apperr.Unauthorized("Not authenticated.")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("Not authenticated.")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func validatePostInput(title, content string) error {
	var fields []apperr.FieldError
	if err := validators.ValidateTitle(title); err != nil {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title must be at least 5 characters."})
	}
	if err := validators.ValidateContent(content); err != nil {
		fields = append(fields, apperr.FieldError{Field: "content", Message: "Content must be at least 5 characters."})
	}
	if len(fields) > 0 {
		return apperr.Validation("Validation failed, entered data is incorrect.", fields)
	}
	return nil
}
