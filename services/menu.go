package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuFilter narrows ListMenuItems. Zero-value fields are ignored.
type MenuFilter struct {
	CookProfileID primitive.ObjectID
	Category      string
	Available     *bool
}

// MenuStore persists menu items.
type MenuStore interface {
	MenuReader
	InsertMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error
	ListMenuItems(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error)
}

// MenuService manages a cook's catalog.
type MenuService struct {
	menu  MenuStore
	cooks CookStore
}

func NewMenuService(menu MenuStore, cooks CookStore) *MenuService {
	return &MenuService{menu: menu, cooks: cooks}
}

// MenuItemInput is the payload for creating or updating a menu item.
type MenuItemInput struct {
	CookProfileID primitive.ObjectID
	Name          string
	Description   string
	Price         float64
	Category      string
	Image         string
	Ingredients   []string
	Allergens     []string
	DietaryInfo   []string
	CookingTime   string
	ServingSize   string
	Available     *bool
	Featured      bool
}

func (in *MenuItemInput) validate() error {
	if in.CookProfileID.IsZero() {
		return Validationf("cook profile ID is required")
	}
	for field, value := range map[string]string{
		"name":         in.Name,
		"description":  in.Description,
		"cooking time": in.CookingTime,
		"serving size": in.ServingSize,
	} {
		if strings.TrimSpace(value) == "" {
			return Validationf("%s is required", field)
		}
	}
	if in.Price < 0 {
		return Validationf("price cannot be negative")
	}
	if !models.ValidCategory(in.Category) {
		return Validationf("invalid category %q", in.Category)
	}
	return nil
}

// Create adds a dish to an existing cook's catalog. Items default to
// available unless the input says otherwise.
func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*models.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.cooks.CookByID(ctx, in.CookProfileID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCookNotFound
		}
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	now := time.Now()
	item := &models.MenuItem{
		ID:            primitive.NewObjectID(),
		CookProfileID: in.CookProfileID,
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		Category:      in.Category,
		Image:         in.Image,
		Ingredients:   in.Ingredients,
		Allergens:     in.Allergens,
		DietaryInfo:   in.DietaryInfo,
		CookingTime:   in.CookingTime,
		ServingSize:   in.ServingSize,
		Available:     available,
		Featured:      in.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.menu.InsertMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns a menu item by ID.
func (s *MenuService) Get(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	item, err := s.menu.MenuItemByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

// List returns menu items matching the filter.
func (s *MenuService) List(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, Validationf("invalid category %q", filter.Category)
	}
	return s.menu.ListMenuItems(ctx, filter)
}

// Update rewrites a menu item. The owning cook cannot be changed.
func (s *MenuService) Update(ctx context.Context, id primitive.ObjectID, in MenuItemInput) (*models.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.CookProfileID = item.CookProfileID
	if err := in.validate(); err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = strings.TrimSpace(in.Description)
	item.Price = in.Price
	item.Category = in.Category
	item.Image = in.Image
	item.Ingredients = in.Ingredients
	item.Allergens = in.Allergens
	item.DietaryInfo = in.DietaryInfo
	item.CookingTime = in.CookingTime
	item.ServingSize = in.ServingSize
	if in.Available != nil {
		item.Available = *in.Available
	}
	item.Featured = in.Featured
	item.UpdatedAt = time.Now()

	if err := s.menu.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item from the catalog. Historical orders keep their
// snapshotted name and price.
func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.menu.DeleteMenuItem(ctx, id)
}
