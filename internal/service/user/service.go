package user

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	runInTx     postgresql.TxRunner
	userRepo    user.UserRepository
	refreshRepo auth.RefreshTokenRepository
}

func NewUserService(runInTx postgresql.TxRunner, userRepo user.UserRepository, refreshRepo auth.RefreshTokenRepository) user.UserService {
	return &UserServiceImpl{
		runInTx:     runInTx,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
	}
}

// HashPassword hashes a plain password with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if err := filter.Validate(); err != nil {
		return user.ListUserResponse{}, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	return user.ListUserResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: utils.TotalPages(total, filter.Limit),
		Showing:    utils.Showing(filter.Page, filter.Limit, len(responses), total),
		Users:      responses,
	}, nil
}

// UpdateUser implements user.UserService. Deactivation and password changes end every open session.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, actorID string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	if req.ID == actorID && (req.Role != nil || (req.IsActive != nil && !*req.IsActive)) {
		return user.UserResponse{}, user.ErrCannotDemoteSelf
	}

	var updated user.User
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		revokeSessions := false
		if req.FullName != nil {
			existing.FullName = *req.FullName
		}
		if req.Role != nil {
			existing.Role = user.Role(*req.Role)
		}
		if req.IsActive != nil {
			if existing.IsActive && !*req.IsActive {
				revokeSessions = true
			}
			existing.IsActive = *req.IsActive
		}
		if req.Password != nil {
			hash, err := HashPassword(*req.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			existing.PasswordHash = hash
			revokeSessions = true
		}

		updated, err = s.userRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		if revokeSessions {
			if err := s.refreshRepo.RevokeAllForUser(txCtx, existing.ID); err != nil {
				return fmt.Errorf("failed to revoke sessions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID string, id string) error {
	if id == actorID {
		return user.ErrCannotDeleteSelf
	}
	return s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.refreshRepo.RevokeAllForUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}
		return s.userRepo.Delete(txCtx, id)
	})
}

// EnsureAdmin creates the given administrator when the users table is empty.
// It reports whether an account was created.
func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, req user.CreateUserRequest) (bool, error) {
	_, total, err := s.userRepo.List(ctx, user.UserFilter{Page: 1, Limit: 1})
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if total > 0 {
		return false, nil
	}

	req.Role = string(user.RoleAdmin)
	if _, err := s.CreateUser(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}
