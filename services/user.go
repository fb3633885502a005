package services

import (
	"context"
	"errors"
	"strings"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists user accounts.
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	SetUserVerified(ctx context.Context, id primitive.ObjectID) error
}

// UserService handles registration, login and the email verification flow.
// Token issuing is injected so the service carries no JWT dependency.
type UserService struct {
	users    UserStore
	newToken func(email, role string) (string, error)
}

func NewUserService(users UserStore, newToken func(email, role string) (string, error)) *UserService {
	return &UserService{users: users, newToken: newToken}
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
}

func (in *RegisterInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return Validationf("name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return Validationf("a valid email is required")
	}
	if len(in.Password) < 6 {
		return Validationf("password must be at least 6 characters")
	}
	if in.Role != models.RoleUser && in.Role != models.RoleCook {
		return Validationf("role must be %q or %q", models.RoleUser, models.RoleCook)
	}
	return nil
}

// Register creates an unverified account with a hashed password and a
// verification token for the confirmation email.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.users.UserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	token, err := s.newToken(email, in.Role)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:                primitive.NewObjectID(),
		Name:              strings.TrimSpace(in.Name),
		Email:             email,
		Password:          string(hashed),
		Role:              in.Role,
		Phone:             strings.TrimSpace(in.Phone),
		Address:           strings.TrimSpace(in.Address),
		VerificationToken: token,
	}
	if err := s.users.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns the account on success.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// VerifyEmail marks the account holding the token as verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.UserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.SetUserVerified(ctx, user.ID)
}

// GetByEmail returns the account for an email address.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.UserByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// GetByID returns the account for an ID.
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
