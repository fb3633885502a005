package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const estimatedDeliveryOffset = 60 * time.Minute

// OrderFilter narrows ListOrders. Zero-value fields are ignored.
type OrderFilter struct {
	UserID        primitive.ObjectID
	CookProfileID primitive.ObjectID
	Status        string
	Page          int
	Limit         int
}

// OrderStore persists orders. PlaceOrder must insert the order and delete
// the cart atomically.
type OrderStore interface {
	PlaceOrder(ctx context.Context, order *models.Order, cartID primitive.ObjectID) error
	OrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	OrderByNumber(ctx context.Context, number string) (*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, int64, error)
}

// OrderService implements the checkout transition and the order lifecycle.
type OrderService struct {
	orders OrderStore
	carts  CartStore
	menu   MenuReader
	now    func() time.Time
}

func NewOrderService(orders OrderStore, carts CartStore, menu MenuReader) *OrderService {
	return &OrderService{orders: orders, carts: carts, menu: menu, now: time.Now}
}

// CheckoutInput is the payload for placing an order.
type CheckoutInput struct {
	UserID          primitive.ObjectID
	DeliveryAddress models.DeliveryAddress
	PaymentMethod   string
	CustomerNotes   string
}

func (in *CheckoutInput) validate() error {
	if in.UserID.IsZero() {
		return Validationf("user ID is required")
	}
	addr := in.DeliveryAddress
	for field, value := range map[string]string{
		"street":         addr.Street,
		"city":           addr.City,
		"state":          addr.State,
		"postal code":    addr.PostalCode,
		"contact number": addr.ContactNumber,
	} {
		if strings.TrimSpace(value) == "" {
			return Validationf("missing delivery address field: %s", field)
		}
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return Validationf("invalid payment method %q", in.PaymentMethod)
	}
	return nil
}

// PlaceOrder converts the user's cart into an order. Every line's menu item
// is re-checked for availability at commit time; the first unavailable item
// fails the checkout by name and leaves the cart untouched. On success the
// order is persisted and the cart deleted in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, in CheckoutInput) (*models.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.CartByUser(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item, err := s.menu.MenuItemByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		if !item.Available {
			return nil, &UnavailableItemError{ItemName: item.Name}
		}
		items = append(items, models.OrderItem{
			MenuItemID:          line.MenuItemID,
			Name:                item.Name,
			Quantity:            line.Quantity,
			Price:               line.Price,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	now := s.now()
	paymentStatus := models.PaymentPaid // digital payments are assumed instant
	if in.PaymentMethod == models.PaymentCash {
		paymentStatus = models.PaymentPending
	}

	order := &models.Order{
		ID:                    primitive.NewObjectID(),
		OrderNumber:           generateOrderNumber(now),
		UserID:                in.UserID,
		CookProfileID:         cart.CookProfileID,
		Items:                 items,
		TotalAmount:           cart.TotalAmount,
		DeliveryAddress:       in.DeliveryAddress,
		PaymentMethod:         in.PaymentMethod,
		PaymentStatus:         paymentStatus,
		OrderStatus:           models.StatusPlaced,
		EstimatedDeliveryTime: now.Add(estimatedDeliveryOffset),
		CustomerNotes:         strings.TrimSpace(in.CustomerNotes),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.orders.PlaceOrder(ctx, order, cart.ID); err != nil {
		return nil, err
	}
	return order, nil
}

// generateOrderNumber builds a human-facing code: "HB" + the last six digits
// of the unix-milli timestamp + five random base-36 characters. Collisions
// are possible in principle but negligible at this scale.
func generateOrderNumber(now time.Time) string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	timestamp := fmt.Sprintf("%d", now.UnixMilli())
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return "HB" + timestamp[len(timestamp)-6:] + string(suffix)
}

// Get resolves an order by hex ObjectID or by order number.
func (s *OrderService) Get(ctx context.Context, idOrNumber string) (*models.Order, error) {
	var (
		order *models.Order
		err   error
	)
	if id, idErr := primitive.ObjectIDFromHex(idOrNumber); idErr == nil {
		order, err = s.orders.OrderByID(ctx, id)
	} else {
		order, err = s.orders.OrderByNumber(ctx, idOrNumber)
	}
	if errors.Is(err, ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns a page of orders matching the filter, newest first, plus the
// total match count for pagination.
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]models.Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return nil, 0, Validationf("invalid order status %q", filter.Status)
	}
	return s.orders.ListOrders(ctx, filter)
}

// OrderUpdate carries the mutable order fields. Nil pointers leave the
// corresponding field untouched.
type OrderUpdate struct {
	OrderStatus        *string
	PaymentStatus      *string
	CookNotes          *string
	CancellationReason *string
	ActualDeliveryTime *time.Time
}

// Update applies status and notes changes to an order addressed by ID or
// order number. Status writes are operator-driven and free-form between
// non-terminal states, with three hard rules: unknown statuses are rejected,
// terminal states ("delivered", "cancelled") cannot be left, and
// cancellation is only allowed from "placed" or "confirmed". Moving to
// "delivered" stamps the actual delivery time when unset.
func (s *OrderService) Update(ctx context.Context, idOrNumber string, update OrderUpdate) (*models.Order, error) {
	order, err := s.Get(ctx, idOrNumber)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if update.OrderStatus != nil {
		next := *update.OrderStatus
		if err := checkTransition(order.OrderStatus, next); err != nil {
			return nil, err
		}
		order.OrderStatus = next
		if next == models.StatusDelivered && order.ActualDeliveryTime == nil {
			order.ActualDeliveryTime = &now
		}
	}
	if update.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*update.PaymentStatus) {
			return nil, Validationf("invalid payment status %q", *update.PaymentStatus)
		}
		order.PaymentStatus = *update.PaymentStatus
	}
	if update.CookNotes != nil {
		order.CookNotes = *update.CookNotes
	}
	if update.CancellationReason != nil {
		order.CancellationReason = *update.CancellationReason
	}
	if update.ActualDeliveryTime != nil {
		order.ActualDeliveryTime = update.ActualDeliveryTime
	}

	order.UpdatedAt = now
	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func checkTransition(from, to string) error {
	if !models.ValidOrderStatus(to) {
		return Validationf("invalid order status %q", to)
	}
	if from == to {
		return nil
	}
	if from == models.StatusDelivered || from == models.StatusCancelled {
		return &StatusTransitionError{From: from, To: to}
	}
	if to == models.StatusCancelled && from != models.StatusPlaced && from != models.StatusConfirmed {
		return &StatusTransitionError{From: from, To: to}
	}
	return nil
}

// Delete removes an order, permitted only while its status is "placed" or
// "cancelled" so in-flight and fulfilled orders keep their history.
func (s *OrderService) Delete(ctx context.Context, idOrNumber string) error {
	order, err := s.Get(ctx, idOrNumber)
	if err != nil {
		return err
	}
	if order.OrderStatus != models.StatusPlaced && order.OrderStatus != models.StatusCancelled {
		return ErrOrderNotDeletable
	}
	return s.orders.DeleteOrder(ctx, order.ID)
}
