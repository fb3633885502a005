package services

import (
	"context"
	"strings"
	"testing"

	"homebites/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCatalog() (*fakeMenu, *models.MenuItem, *models.MenuItem, *models.MenuItem) {
	cookA := primitive.NewObjectID()
	cookB := primitive.NewObjectID()

	biryani := &models.MenuItem{
		ID: primitive.NewObjectID(), CookProfileID: cookA,
		Name: "Hyderabadi Biryani", Price: 100, Available: true,
	}
	lassi := &models.MenuItem{
		ID: primitive.NewObjectID(), CookProfileID: cookA,
		Name: "Sweet Lassi", Price: 50, Available: true,
	}
	momos := &models.MenuItem{
		ID: primitive.NewObjectID(), CookProfileID: cookB,
		Name: "Veg Momos", Price: 80, Available: true,
	}
	return newFakeMenu(biryani, lassi, momos), biryani, lassi, momos
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	menu, biryani, lassi, momos := newTestCatalog()
	userID := primitive.NewObjectID()

	carts := newFakeCarts()
	svc := NewCartService(carts, menu)

	// First add creates the cart scoped to the item's cook.
	cart, err := svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, biryani.CookProfileID, cart.CookProfileID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 200.0, cart.TotalAmount)

	// Second item from the same cook appends a line.
	cart, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 250.0, cart.TotalAmount)

	// Adding an existing item increments quantity and keeps the total in sync.
	cart, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 1, SpecialInstructions: "extra raita"})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "extra raita", cart.Items[0].SpecialInstructions)
	assert.Equal(t, 350.0, cart.TotalAmount)

	// Items from a different cook are rejected until the cart is cleared.
	_, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: momos.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrCartCookClash)

	require.NoError(t, svc.Clear(ctx, userID))
	cart, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: momos.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, momos.CookProfileID, cart.CookProfileID)
}

func TestCartService_AddItem_errors(t *testing.T) {
	ctx := context.Background()
	menu, biryani, _, _ := newTestCatalog()
	userID := primitive.NewObjectID()

	unavailable := &models.MenuItem{
		ID: primitive.NewObjectID(), CookProfileID: biryani.CookProfileID,
		Name: "Seasonal Thali", Price: 150, Available: false,
	}
	menu.items[unavailable.ID] = unavailable

	svc := NewCartService(newFakeCarts(), menu)

	tests := []struct {
		name    string
		input   CartLineInput
		wantErr error
	}{
		{
			name:    "missing_ids",
			input:   CartLineInput{Quantity: 1},
			wantErr: &ValidationError{},
		},
		{
			name:    "zero_quantity",
			input:   CartLineInput{UserID: userID, MenuItemID: biryani.ID},
			wantErr: &ValidationError{},
		},
		{
			name:    "too_long_instructions",
			input:   CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 1, SpecialInstructions: strings.Repeat("x", 201)},
			wantErr: &ValidationError{},
		},
		{
			name:    "unknown_item",
			input:   CartLineInput{UserID: userID, MenuItemID: primitive.NewObjectID(), Quantity: 1},
			wantErr: ErrMenuItemNotFound,
		},
		{
			name:    "unavailable_item",
			input:   CartLineInput{UserID: userID, MenuItemID: unavailable.ID, Quantity: 1},
			wantErr: ErrItemNotAvailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, tc.input)
			var validation *ValidationError
			if _, isValidation := tc.wantErr.(*ValidationError); isValidation {
				assert.ErrorAs(t, err, &validation)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	menu, biryani, lassi, _ := newTestCatalog()
	userID := primitive.NewObjectID()

	carts := newFakeCarts()
	svc := NewCartService(carts, menu)

	_, err := svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 1})
	require.NoError(t, err)

	// Changing a quantity recomputes the total.
	cart, err := svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 550.0, cart.TotalAmount)

	// Quantity 0 removes the line.
	cart, err = svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 0})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, lassi.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, 50.0, cart.TotalAmount)

	// Removing the last line deletes the cart entirely.
	cart, err = svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 0})
	require.NoError(t, err)
	assert.Nil(t, cart)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartService_UpdateItem_notFound(t *testing.T) {
	ctx := context.Background()
	menu, biryani, lassi, _ := newTestCatalog()
	userID := primitive.NewObjectID()

	svc := NewCartService(newFakeCarts(), menu)

	_, err := svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCartService_Clear_missingCartIsNoop(t *testing.T) {
	svc := NewCartService(newFakeCarts(), newFakeMenu())
	assert.NoError(t, svc.Clear(context.Background(), primitive.NewObjectID()))
}

func TestCartService_totalInvariant(t *testing.T) {
	ctx := context.Background()
	menu, biryani, lassi, _ := newTestCatalog()
	userID := primitive.NewObjectID()

	svc := NewCartService(newFakeCarts(), menu)

	steps := []func() (*models.Cart, error){
		func() (*models.Cart, error) {
			return svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 2})
		},
		func() (*models.Cart, error) {
			return svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 3})
		},
		func() (*models.Cart, error) {
			return svc.UpdateItem(ctx, CartLineInput{UserID: userID, MenuItemID: lassi.ID, Quantity: 1})
		},
		func() (*models.Cart, error) {
			return svc.AddItem(ctx, CartLineInput{UserID: userID, MenuItemID: biryani.ID, Quantity: 4})
		},
	}

	for _, step := range steps {
		cart, err := step()
		require.NoError(t, err)
		require.NotNil(t, cart)
		assert.Equal(t, cart.Total(), cart.TotalAmount)
	}
}
