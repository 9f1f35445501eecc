package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Email:    "admin@example.com",
		Password: "Password123",
		Name:     "管理者",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "Password123", created.Password, "password must be stored hashed")

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(ctx, "admin@example.com", "Password123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "Password123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate signup", func(t *testing.T) {
		_, err := svc.Signup(ctx, domain.User{Email: "admin@example.com", Password: "Password123"})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}
