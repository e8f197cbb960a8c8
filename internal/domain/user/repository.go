package user

import "context"

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByProvider(ctx context.Context, providerID string) (*User, error)
	UserExists(ctx context.Context, id string) (bool, error)
}
