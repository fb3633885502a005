package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxInstructionsLen = 200

// MenuReader is the catalog lookup the cart and checkout flows depend on.
type MenuReader interface {
	MenuItemByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
}

// CartStore persists carts. CartByUser returns ErrNotFound when the user has
// no active cart.
type CartStore interface {
	CartByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, id primitive.ObjectID) error
	DeleteCartByUser(ctx context.Context, userID primitive.ObjectID) error
}

// CartService implements the cart aggregate: one active cart per user, all
// lines from a single cook, denormalized running total.
type CartService struct {
	carts CartStore
	menu  MenuReader
}

func NewCartService(carts CartStore, menu MenuReader) *CartService {
	return &CartService{carts: carts, menu: menu}
}

// CartLineInput is the payload for adding or updating a cart line.
type CartLineInput struct {
	UserID              primitive.ObjectID
	MenuItemID          primitive.ObjectID
	Quantity            int
	SpecialInstructions string
}

func (in *CartLineInput) validate(minQuantity int) error {
	if in.UserID.IsZero() || in.MenuItemID.IsZero() {
		return Validationf("user ID and menu item ID are required")
	}
	if in.Quantity < minQuantity {
		return Validationf("quantity must be at least %d", minQuantity)
	}
	if len(in.SpecialInstructions) > maxInstructionsLen {
		return Validationf("special instructions cannot be more than %d characters", maxInstructionsLen)
	}
	return nil
}

// AddItem adds a menu item to the user's cart, creating the cart on first
// add. Adding an already-present item increments its quantity. Items from a
// different cook than the existing cart's are rejected with ErrCartCookClash.
func (s *CartService) AddItem(ctx context.Context, in CartLineInput) (*models.Cart, error) {
	if err := in.validate(1); err != nil {
		return nil, err
	}

	item, err := s.menu.MenuItemByID(ctx, in.MenuItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemNotAvailable
	}

	instructions := strings.TrimSpace(in.SpecialInstructions)
	now := time.Now()

	cart, err := s.carts.CartByUser(ctx, in.UserID)
	switch {
	case errors.Is(err, ErrNotFound):
		cart = &models.Cart{
			ID:            primitive.NewObjectID(),
			UserID:        in.UserID,
			CookProfileID: item.CookProfileID,
			Items: []models.CartItem{{
				MenuItemID:          item.ID,
				Quantity:            in.Quantity,
				Price:               item.Price,
				SpecialInstructions: instructions,
			}},
			CreatedAt: now,
		}
	case err != nil:
		return nil, err
	default:
		if cart.CookProfileID != item.CookProfileID {
			return nil, ErrCartCookClash
		}
		found := false
		for i := range cart.Items {
			if cart.Items[i].MenuItemID == item.ID {
				cart.Items[i].Quantity += in.Quantity
				if instructions != "" {
					cart.Items[i].SpecialInstructions = instructions
				}
				found = true
				break
			}
		}
		if !found {
			cart.Items = append(cart.Items, models.CartItem{
				MenuItemID:          item.ID,
				Quantity:            in.Quantity,
				Price:               item.Price,
				SpecialInstructions: instructions,
			})
		}
	}

	cart.TotalAmount = cart.Total()
	cart.UpdatedAt = now
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets a line's quantity and instructions. Quantity 0 removes the
// line; removing the last line deletes the cart and returns (nil, nil).
func (s *CartService) UpdateItem(ctx context.Context, in CartLineInput) (*models.Cart, error) {
	if err := in.validate(0); err != nil {
		return nil, err
	}

	cart, err := s.carts.CartByUser(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == in.MenuItemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrItemNotInCart
	}

	if in.Quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		if len(cart.Items) == 0 {
			if err := s.carts.DeleteCart(ctx, cart.ID); err != nil {
				return nil, err
			}
			return nil, nil
		}
	} else {
		cart.Items[idx].Quantity = in.Quantity
		if in.SpecialInstructions != "" {
			cart.Items[idx].SpecialInstructions = strings.TrimSpace(in.SpecialInstructions)
		}
	}

	cart.TotalAmount = cart.Total()
	cart.UpdatedAt = time.Now()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Get returns the user's cart, or (nil, nil) when the user has none.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.CartByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear deletes the user's cart. Clearing a nonexistent cart is a no-op.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return s.carts.DeleteCartByUser(ctx, userID)
}
