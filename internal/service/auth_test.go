package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/security"
	"coolgym-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const authTestSecret = "0123456789abcdef0123456789abcdef"

func registerInput() service.RegisterInput {
	return service.RegisterInput{
		Username: "newmember",
		Email:    "member@gym.com",
		Password: "s3cret-pass",
		Name:     "New Member",
		Type:     domain.UserTypeIndividual,
		Role:     string(domain.UserRoleClient),
	}
}

func newAuthService(store *mockStore) service.AuthService {
	tokens := security.NewTokenManager(authTestSecret, time.Hour)
	return service.NewAuthService(store, tokens)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(nil, sql.ErrNoRows)
		store.users.On("GetByUsername", ctx, "newmember").Return(nil, sql.ErrNoRows)
		store.users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		}).Return(nil)

		user, err := newAuthService(store).Register(ctx, registerInput())

		assert.NoError(t, err)
		assert.Equal(t, int32(42), user.ID)
		assert.Equal(t, "member@gym.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
		store.users.AssertExpectations(t)
	})

	t.Run("email already taken", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(&domain.User{ID: 1}, nil)

		_, err := newAuthService(store).Register(ctx, registerInput())

		assert.ErrorIs(t, err, service.ErrEmailTaken)
		store.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("username already taken", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(nil, sql.ErrNoRows)
		store.users.On("GetByUsername", ctx, "newmember").Return(&domain.User{ID: 2}, nil)

		_, err := newAuthService(store).Register(ctx, registerInput())

		assert.ErrorIs(t, err, service.ErrUsernameTaken)
		store.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(nil, sql.ErrNoRows)
		store.users.On("GetByUsername", ctx, "newmember").Return(nil, sql.ErrNoRows)

		in := registerInput()
		in.Role = "admin"
		_, err := newAuthService(store).Register(ctx, in)

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{
		ID:           42,
		Email:        "member@gym.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleClient,
	}

	t.Run("returns token for valid credentials", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(stored, nil)

		res, err := newAuthService(store).Login(ctx, "member@gym.com", "s3cret-pass")

		assert.NoError(t, err)
		assert.Equal(t, stored, res.User)

		tokens := security.NewTokenManager(authTestSecret, time.Hour)
		claims, err := tokens.ValidateToken(res.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "client", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "member@gym.com").Return(stored, nil)

		_, err := newAuthService(store).Login(ctx, "member@gym.com", "wrong")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		store := newMockStore()
		store.users.On("GetByEmail", ctx, "ghost@gym.com").Return(nil, sql.ErrNoRows)

		_, err := newAuthService(store).Login(ctx, "ghost@gym.com", "s3cret-pass")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
