package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleBlogger Role = "blogger"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleBlogger, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password" json:"-"`
	FirstName    string               `bson:"first_name" json:"firstName"`
	LastName     string               `bson:"last_name" json:"lastName"`
	Role         Role                 `bson:"role" json:"role"`
	Posts        []primitive.ObjectID `bson:"posts" json:"posts"`
	CreatedAt    time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}
