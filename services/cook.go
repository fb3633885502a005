package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var priceRanges = map[string]bool{"$": true, "$$": true, "$$$": true, "$$$$": true}

// CookStore persists cook profiles.
type CookStore interface {
	CookRatingStore
	CookByUser(ctx context.Context, userID primitive.ObjectID) (*models.CookProfile, error)
	InsertCook(ctx context.Context, cook *models.CookProfile) error
	UpdateCook(ctx context.Context, cook *models.CookProfile) error
	ListCooks(ctx context.Context, featuredOnly bool) ([]models.CookProfile, error)
}

// CookService manages cook storefronts. Only accounts with the cook role may
// own a profile, and each account owns at most one.
type CookService struct {
	cooks CookStore
	users UserStore
}

func NewCookService(cooks CookStore, users UserStore) *CookService {
	return &CookService{cooks: cooks, users: users}
}

// CookProfileInput is the payload for creating or updating a profile.
type CookProfileInput struct {
	UserID       primitive.ObjectID
	BusinessName string
	Description  string
	Cuisine      []string
	Specialties  []string
	Location     string
	PriceRange   string
	DeliveryTime string
}

func (in *CookProfileInput) validate() error {
	if in.UserID.IsZero() {
		return Validationf("user ID is required")
	}
	for field, value := range map[string]string{
		"business name": in.BusinessName,
		"description":   in.Description,
		"location":      in.Location,
		"delivery time": in.DeliveryTime,
	} {
		if strings.TrimSpace(value) == "" {
			return Validationf("%s is required", field)
		}
	}
	if len(in.Cuisine) == 0 {
		return Validationf("at least one cuisine type is required")
	}
	if !priceRanges[in.PriceRange] {
		return Validationf("invalid price range %q", in.PriceRange)
	}
	return nil
}

// Create registers a new cook profile for a cook-role account.
func (s *CookService) Create(ctx context.Context, in CookProfileInput) (*models.CookProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UserByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleCook {
		return nil, ErrNotACook
	}

	if _, err := s.cooks.CookByUser(ctx, in.UserID); err == nil {
		return nil, ErrCookProfileHeld
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	cook := &models.CookProfile{
		ID:           primitive.NewObjectID(),
		UserID:       in.UserID,
		BusinessName: strings.TrimSpace(in.BusinessName),
		Description:  strings.TrimSpace(in.Description),
		Cuisine:      in.Cuisine,
		Specialties:  in.Specialties,
		Location:     strings.TrimSpace(in.Location),
		PriceRange:   in.PriceRange,
		DeliveryTime: in.DeliveryTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cooks.InsertCook(ctx, cook); err != nil {
		return nil, err
	}
	return cook, nil
}

// Get returns a cook profile by ID.
func (s *CookService) Get(ctx context.Context, id primitive.ObjectID) (*models.CookProfile, error) {
	cook, err := s.cooks.CookByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCookNotFound
	}
	return cook, err
}

// GetByUser returns the profile owned by a user.
func (s *CookService) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.CookProfile, error) {
	cook, err := s.cooks.CookByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCookNotFound
	}
	return cook, err
}

// List returns cook profiles, optionally only featured ones.
func (s *CookService) List(ctx context.Context, featuredOnly bool) ([]models.CookProfile, error) {
	return s.cooks.ListCooks(ctx, featuredOnly)
}

// Update rewrites the storefront fields of an existing profile. Rating,
// order counters and the featured flag are not touched here.
func (s *CookService) Update(ctx context.Context, id primitive.ObjectID, in CookProfileInput) (*models.CookProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cook, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cook.BusinessName = strings.TrimSpace(in.BusinessName)
	cook.Description = strings.TrimSpace(in.Description)
	cook.Cuisine = in.Cuisine
	cook.Specialties = in.Specialties
	cook.Location = strings.TrimSpace(in.Location)
	cook.PriceRange = in.PriceRange
	cook.DeliveryTime = in.DeliveryTime
	cook.UpdatedAt = time.Now()

	if err := s.cooks.UpdateCook(ctx, cook); err != nil {
		return nil, err
	}
	return cook, nil
}
