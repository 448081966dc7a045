package user

import "context"

// UserService manages system accounts. actorID is the authenticated caller.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	UpdateUser(ctx context.Context, actorID string, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, actorID string, id string) error
	EnsureAdmin(ctx context.Context, req CreateUserRequest) (bool, error)
}
