package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"microblog/internal/models"
	"microblog/internal/repository"
)

// In-memory stores standing in for the Mongo repositories. They return
// copies so a test fails if a service forgets to persist a mutation.

type memUserStore struct {
	users map[primitive.ObjectID]*models.User
	order []primitive.ObjectID
}

var _ UserStore = (*memUserStore)(nil)

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Posts = append([]primitive.ObjectID{}, u.Posts...)
	return &cp
}

func (s *memUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(u), nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, id := range s.order {
		if s.users[id].Email == email {
			return copyUser(s.users[id]), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = copyUser(user)
	s.order = append(s.order, user.ID)
	return nil
}

func (s *memUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *memUserStore) List(_ context.Context) ([]*models.User, error) {
	var users []*models.User
	for _, id := range s.order {
		users = append(users, copyUser(s.users[id]))
	}
	return users, nil
}

type memPostStore struct {
	posts map[primitive.ObjectID]*models.Post
	order []primitive.ObjectID
}

var _ PostStore = (*memPostStore)(nil)

func newMemPostStore() *memPostStore {
	return &memPostStore{posts: map[primitive.ObjectID]*models.Post{}}
}

func copyPost(p *models.Post) *models.Post {
	cp := *p
	return &cp
}

func matches(p *models.Post, f repository.PostFilter) bool {
	if f.Author != nil && p.Author != *f.Author {
		return false
	}
	if f.Allowed != nil && p.Allowed != *f.Allowed {
		return false
	}
	return true
}

func (s *memPostStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyPost(p), nil
}

// List walks insertion order newest-first, mirroring the created_at sort
// of the real repository.
func (s *memPostStore) List(_ context.Context, f repository.PostFilter, skip, limit int64) ([]*models.Post, error) {
	var out []*models.Post
	var seen int64
	for i := len(s.order) - 1; i >= 0; i-- {
		p := s.posts[s.order[i]]
		if !matches(p, f) {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		if int64(len(out)) == limit {
			break
		}
		out = append(out, copyPost(p))
	}
	return out, nil
}

func (s *memPostStore) Count(_ context.Context, f repository.PostFilter) (int64, error) {
	var n int64
	for _, p := range s.posts {
		if matches(p, f) {
			n++
		}
	}
	return n, nil
}

func (s *memPostStore) Create(_ context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	s.posts[post.ID] = copyPost(post)
	s.order = append(s.order, post.ID)
	return nil
}

func (s *memPostStore) Update(_ context.Context, post *models.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return repository.ErrNotFound
	}
	s.posts[post.ID] = copyPost(post)
	return nil
}

func (s *memPostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
