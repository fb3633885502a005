package services

import (
	"context"
	"testing"

	"homebites/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUsers) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) UserByVerificationToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range f.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUsers) InsertUser(_ context.Context, user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUsers) SetUserVerified(_ context.Context, id primitive.ObjectID) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsVerified = true
	u.VerificationToken = ""
	return nil
}

func staticToken(email, role string) (string, error) {
	return "token-" + email + "-" + role, nil
}

func TestUserService_RegisterLoginVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUsers(), staticToken)

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "Ravi",
		Email:    "Ravi@Example.com",
		Password: "secret123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "secret123", user.Password)

	// Duplicate email is rejected.
	_, err = svc.Register(ctx, RegisterInput{
		Name: "Ravi 2", Email: "ravi@example.com", Password: "secret123", Role: models.RoleUser,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Login is blocked until the email is verified.
	_, err = svc.Login(ctx, "ravi@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	require.NoError(t, svc.VerifyEmail(ctx, user.VerificationToken))

	logged, err := svc.Login(ctx, "ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Login(ctx, "ravi@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Register_validation(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUsers(), staticToken)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing_name", RegisterInput{Email: "a@b.com", Password: "secret123", Role: "user"}},
		{"bad_email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret123", Role: "user"}},
		{"short_password", RegisterInput{Name: "A", Email: "a@b.com", Password: "123", Role: "user"}},
		{"bad_role", RegisterInput{Name: "A", Email: "a@b.com", Password: "secret123", Role: "admin"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.input)
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestUserService_VerifyEmail_unknownToken(t *testing.T) {
	svc := NewUserService(newFakeUsers(), staticToken)
	err := svc.VerifyEmail(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
