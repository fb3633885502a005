package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"homebites/services"
	"homebites/utils"
)

// CartController handles cart-related requests
type CartController struct {
	Carts *services.CartService
}

// NewCartController creates a new CartController
func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

type cartLineRequest struct {
	UserID              string `json:"user_id"`
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

func (req *cartLineRequest) toInput(w http.ResponseWriter) (services.CartLineInput, bool) {
	userID, ok := objectIDParam(w, req.UserID, "user ID")
	if !ok {
		return services.CartLineInput{}, false
	}
	menuItemID, ok := objectIDParam(w, req.MenuItemID, "menu item ID")
	if !ok {
		return services.CartLineInput{}, false
	}
	return services.CartLineInput{
		UserID:              userID,
		MenuItemID:          menuItemID,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	}, true
}

// AddToCart adds a menu item to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}
	input, ok := req.toInput(w)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.AddItem(ctx, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cart, "Item added to cart successfully")
}

// UpdateCartItem sets a line's quantity; quantity 0 removes the line
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}
	input, ok := req.toInput(w)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.UpdateItem(ctx, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cart == nil {
		utils.WriteSuccess(w, http.StatusOK, nil, "Item removed from cart")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cart, "Cart updated successfully")
}

// GetCart retrieves the user's cart; an absent cart is a success with null data
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := objectIDParam(w, r.URL.Query().Get("userId"), "user ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cart == nil {
		utils.WriteSuccess(w, http.StatusOK, nil, "Cart is empty")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cart, "")
}

// ClearCart deletes the user's cart; clearing a missing cart succeeds
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := objectIDParam(w, r.URL.Query().Get("userId"), "user ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := cc.Carts.Clear(ctx, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Cart cleared successfully")
}
