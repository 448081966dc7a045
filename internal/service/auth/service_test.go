package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type memUserRepo struct {
	user.UserRepository
	users     []user.User
	lastLogin map[string]time.Time
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	m.lastLogin[id] = at
	return nil
}

type memRefreshRepo struct {
	tokens  map[string]string
	revoked map[string]bool
}

func (m *memRefreshRepo) CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	m.tokens[token] = userID
	return nil
}

func (m *memRefreshRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	if _, ok := m.tokens[token]; !ok {
		return true, nil
	}
	return m.revoked[token], nil
}

func (m *memRefreshRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	m.revoked[token] = true
	return nil
}

func (m *memRefreshRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	for token, owner := range m.tokens {
		if owner == userID {
			m.revoked[token] = true
		}
	}
	return nil
}

func passthroughTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestAuthService(t *testing.T) (auth.AuthService, *memUserRepo, *memRefreshRepo) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUserRepo{
		users: []user.User{
			{ID: "user-1", Email: "manager@example.com", FullName: "Manager", PasswordHash: string(hash), Role: user.RoleManager, IsActive: true},
			{ID: "user-2", Email: "gone@example.com", FullName: "Gone", PasswordHash: string(hash), Role: user.RoleViewer, IsActive: false},
		},
		lastLogin: map[string]time.Time{},
	}
	refresh := &memRefreshRepo{tokens: map[string]string{}, revoked: map[string]bool{}}
	tokens := jwt.NewJWTService(testSecret, time.Hour, 24*time.Hour, false)

	return NewAuthService(passthroughTx, users, refresh, tokens), users, refresh
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, users, refresh := newTestAuthService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: " Manager@example.com", Password: "password123"},
		auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.AccessTokenExpiresAt, time.Now().Unix())
	assert.Equal(t, user.RoleManager, resp.User.Role)
	assert.Equal(t, "user-1", refresh.tokens[resp.RefreshToken])
	assert.Contains(t, users.lastLogin, "user-1")
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)
	session := auth.SessionTrackingRequest{}

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "wrongpassword"}, session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "gone@example.com", Password: "password123"}, session)
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)

	_, err = svc.Login(ctx, auth.LoginRequest{}, session)
	assert.ErrorContains(t, err, "email")
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
