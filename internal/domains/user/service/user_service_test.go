package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/domains/user"
	"movie-catalog-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if _, exists := f.byEmail[u.Email]; exists {
		return nil, user.ErrEmailAlreadyExists
	}
	stored := *u
	stored.ID = uuid.New()
	stored.IsActive = true
	stored.CreatedAt = time.Now()
	f.byID[stored.ID] = stored
	f.byEmail[stored.Email] = stored.ID
	return &stored, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := f.byID[id]
	return &u, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	f.byID[id] = u
	return nil
}

func newTestService() (user.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager), repo
}

func registerReq() *user.RegisterRequest {
	return &user.RegisterRequest{
		Email:    "gump@example.com",
		Password: "run-forrest-run",
		FullName: "Forrest Gump",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates account with hashed password", func(t *testing.T) {
		svc, repo := newTestService()

		dto, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)
		assert.Equal(t, "gump@example.com", dto.Email)

		stored, err := repo.GetByEmail(context.Background(), "gump@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "run-forrest-run", stored.PasswordHash)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), registerReq())
		assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		tokens, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "gump@example.com",
			Password: "run-forrest-run",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.True(t, tokens.ExpiresAt.After(time.Now()))
		assert.Equal(t, "gump@example.com", tokens.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), &user.LoginRequest{
			Email:    "gump@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("exchanges refresh token for a new pair", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		tokens, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "gump@example.com",
			Password: "run-forrest-run",
		})
		require.NoError(t, err)

		refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, tokens.User.ID, refreshed.User.ID)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		tokens, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "gump@example.com",
			Password: "run-forrest-run",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), tokens.AccessToken)
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})
}
