package controllers

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"homebites/models"
	"homebites/services"
	"homebites/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderController handles order-related requests
type OrderController struct {
	Orders       *services.OrderService
	Users        *services.UserService
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *services.OrderService, users *services.UserService, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Orders:       orders,
		Users:        users,
		EmailService: emailService,
	}
}

type checkoutRequest struct {
	UserID          string                 `json:"user_id"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
	PaymentMethod   string                 `json:"payment_method"`
	CustomerNotes   string                 `json:"customer_notes"`
}

// CreateOrder places an order from the user's cart
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}
	userID, ok := objectIDParam(w, req.UserID, "user ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.PlaceOrder(ctx, services.CheckoutInput{
		UserID:          userID,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		CustomerNotes:   req.CustomerNotes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	oc.notify(order, oc.EmailService.SendOrderConfirmationEmail)

	utils.WriteSuccess(w, http.StatusCreated, order, "Order placed successfully")
}

// GetOrders lists orders filtered by user, cook or status, with pagination
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.OrderFilter{Status: query.Get("status")}

	if v := query.Get("userId"); v != "" {
		id, ok := objectIDParam(w, v, "user ID")
		if !ok {
			return
		}
		filter.UserID = id
	}
	if v := query.Get("cookProfileId"); v != "" {
		id, ok := objectIDParam(w, v, "cook profile ID")
		if !ok {
			return
		}
		filter.CookProfileID = id
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, total, err := oc.Orders.List(ctx, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    orders,
		"pagination": map[string]interface{}{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrder retrieves an order by ID or order number
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := oc.Orders.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, order, "")
}

type orderUpdateRequest struct {
	OrderStatus        *string    `json:"order_status"`
	PaymentStatus      *string    `json:"payment_status"`
	CookNotes          *string    `json:"cook_notes"`
	CancellationReason *string    `json:"cancellation_reason"`
	ActualDeliveryTime *time.Time `json:"actual_delivery_time"`
}

// UpdateOrder applies status and notes changes to an order
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.Update(ctx, mux.Vars(r)["id"], services.OrderUpdate{
		OrderStatus:        req.OrderStatus,
		PaymentStatus:      req.PaymentStatus,
		CookNotes:          req.CookNotes,
		CancellationReason: req.CancellationReason,
		ActualDeliveryTime: req.ActualDeliveryTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.OrderStatus != nil {
		oc.notify(order, oc.EmailService.SendOrderStatusEmail)
	}

	utils.WriteSuccess(w, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder removes an order while it is still in "placed" or "cancelled"
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := oc.Orders.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Order deleted successfully")
}

// notify emails the ordering user in the background; failures are logged only.
func (oc *OrderController) notify(order *models.Order, send func(email, name string, order *models.Order) error) {
	if oc.EmailService == nil {
		return
	}
	go func(userID primitive.ObjectID) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := oc.Users.GetByID(ctx, userID)
		if err != nil {
			log.Printf("Failed to load user %s for order email: %v", userID.Hex(), err)
			return
		}
		if err := send(user.Email, user.Name, order); err != nil {
			log.Printf("Failed to send email to %s: %v", user.Email, err)
		}
	}(order.UserID)
}
