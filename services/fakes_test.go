package services

import (
	"context"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes. They return copies so tests mutating catalog data
// can observe snapshot behavior the same way a real database would.

type fakeMenu struct {
	items map[primitive.ObjectID]*models.MenuItem
}

func newFakeMenu(items ...*models.MenuItem) *fakeMenu {
	f := &fakeMenu{items: make(map[primitive.ObjectID]*models.MenuItem)}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeMenu) MenuItemByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

type fakeCarts struct {
	carts map[primitive.ObjectID]*models.Cart // keyed by cart ID
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func copyCart(cart *models.Cart) *models.Cart {
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied
}

func (f *fakeCarts) CartByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return copyCart(cart), nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCarts) SaveCart(_ context.Context, cart *models.Cart) error {
	f.carts[cart.ID] = copyCart(cart)
	return nil
}

func (f *fakeCarts) DeleteCart(_ context.Context, id primitive.ObjectID) error {
	delete(f.carts, id)
	return nil
}

func (f *fakeCarts) DeleteCartByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, cart := range f.carts {
		if cart.UserID == userID {
			delete(f.carts, id)
		}
	}
	return nil
}

type fakeOrders struct {
	orders map[primitive.ObjectID]*models.Order
	carts  *fakeCarts
}

func newFakeOrders(carts *fakeCarts) *fakeOrders {
	return &fakeOrders{orders: make(map[primitive.ObjectID]*models.Order), carts: carts}
}

func copyOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	return &copied
}

func (f *fakeOrders) PlaceOrder(ctx context.Context, order *models.Order, cartID primitive.ObjectID) error {
	f.orders[order.ID] = copyOrder(order)
	return f.carts.DeleteCart(ctx, cartID)
}

func (f *fakeOrders) OrderByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOrder(order), nil
}

func (f *fakeOrders) OrderByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, order := range f.orders {
		if order.OrderNumber == number {
			return copyOrder(order), nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeOrders) UpdateOrder(_ context.Context, order *models.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return ErrNotFound
	}
	f.orders[order.ID] = copyOrder(order)
	return nil
}

func (f *fakeOrders) DeleteOrder(_ context.Context, id primitive.ObjectID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrders) ListOrders(_ context.Context, filter OrderFilter) ([]models.Order, int64, error) {
	var matched []models.Order
	for _, order := range f.orders {
		if !filter.UserID.IsZero() && order.UserID != filter.UserID {
			continue
		}
		if !filter.CookProfileID.IsZero() && order.CookProfileID != filter.CookProfileID {
			continue
		}
		if filter.Status != "" && order.OrderStatus != filter.Status {
			continue
		}
		matched = append(matched, *copyOrder(order))
	}
	return matched, int64(len(matched)), nil
}

type fakeReviews struct {
	reviews []*models.Review
}

func (f *fakeReviews) HasReview(_ context.Context, userID, cookID primitive.ObjectID) (bool, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.CookID == cookID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviews) InsertReview(_ context.Context, review *models.Review) error {
	copied := *review
	f.reviews = append(f.reviews, &copied)
	return nil
}

func (f *fakeReviews) ListReviews(_ context.Context, filter ReviewFilter) ([]models.Review, error) {
	var matched []models.Review
	for _, r := range f.reviews {
		if !filter.CookID.IsZero() && r.CookID != filter.CookID {
			continue
		}
		if !filter.UserID.IsZero() && r.UserID != filter.UserID {
			continue
		}
		matched = append(matched, *r)
	}
	return matched, nil
}

func (f *fakeReviews) RatingsByCook(_ context.Context, cookID primitive.ObjectID) ([]int, error) {
	var ratings []int
	for _, r := range f.reviews {
		if r.CookID == cookID {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

type fakeCooks struct {
	cooks map[primitive.ObjectID]*models.CookProfile
}

func newFakeCooks(cooks ...*models.CookProfile) *fakeCooks {
	f := &fakeCooks{cooks: make(map[primitive.ObjectID]*models.CookProfile)}
	for _, cook := range cooks {
		f.cooks[cook.ID] = cook
	}
	return f
}

func (f *fakeCooks) CookByID(_ context.Context, id primitive.ObjectID) (*models.CookProfile, error) {
	cook, ok := f.cooks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *cook
	return &copied, nil
}

func (f *fakeCooks) SetCookRating(_ context.Context, id primitive.ObjectID, rating float64) error {
	cook, ok := f.cooks[id]
	if !ok {
		return ErrNotFound
	}
	cook.Rating = rating
	return nil
}
