package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"homebites/middleware"
	"homebites/services"
	"homebites/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuController handles catalog requests
type MenuController struct {
	Menu  *services.MenuService
	Cooks *services.CookService
}

// NewMenuController creates a new MenuController
func NewMenuController(menu *services.MenuService, cooks *services.CookService) *MenuController {
	return &MenuController{Menu: menu, Cooks: cooks}
}

type menuItemRequest struct {
	CookProfileID string   `json:"cook_profile_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Ingredients   []string `json:"ingredients"`
	Allergens     []string `json:"allergens"`
	DietaryInfo   []string `json:"dietary_info"`
	CookingTime   string   `json:"cooking_time"`
	ServingSize   string   `json:"serving_size"`
	Available     *bool    `json:"available"`
	Featured      bool     `json:"featured"`
}

func (req *menuItemRequest) toInput(cookProfileID primitive.ObjectID) services.MenuItemInput {
	return services.MenuItemInput{
		CookProfileID: cookProfileID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		Ingredients:   req.Ingredients,
		Allergens:     req.Allergens,
		DietaryInfo:   req.DietaryInfo,
		CookingTime:   req.CookingTime,
		ServingSize:   req.ServingSize,
		Available:     req.Available,
		Featured:      req.Featured,
	}
}

// GetMenuItems lists menu items filtered by cook, category or availability
func (mc *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.MenuFilter{Category: query.Get("category")}

	if v := query.Get("cookProfileId"); v != "" {
		id, ok := objectIDParam(w, v, "cook profile ID")
		if !ok {
			return
		}
		filter.CookProfileID = id
	}
	if v := query.Get("available"); v != "" {
		available := v == "true"
		filter.Available = &available
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := mc.Menu.List(ctx, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, items, "")
}

// GetMenuItemByID retrieves a single menu item
func (mc *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, mux.Vars(r)["id"], "menu item ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := mc.Menu.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, item, "")
}

// ownProfile resolves the authenticated cook's profile for ownership checks.
func (mc *MenuController) ownProfile(w http.ResponseWriter, r *http.Request, ctx context.Context) (primitive.ObjectID, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "Could not parse user from context")
		return primitive.NilObjectID, false
	}
	userID, ok := objectIDParam(w, claims.UserID, "user ID")
	if !ok {
		return primitive.NilObjectID, false
	}
	cook, err := mc.Cooks.GetByUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return primitive.NilObjectID, false
	}
	return cook.ID, true
}

// CreateMenuItem adds a dish to the authenticated cook's catalog
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cookProfileID, ok := mc.ownProfile(w, r, ctx)
	if !ok {
		return
	}

	item, err := mc.Menu.Create(ctx, req.toInput(cookProfileID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem rewrites a dish owned by the authenticated cook
func (mc *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, mux.Vars(r)["id"], "menu item ID")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cookProfileID, ok := mc.ownProfile(w, r, ctx)
	if !ok {
		return
	}
	existing, err := mc.Menu.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing.CookProfileID != cookProfileID {
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, "You can only update your own menu items")
		return
	}

	item, err := mc.Menu.Update(ctx, id, req.toInput(cookProfileID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem removes a dish owned by the authenticated cook
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, mux.Vars(r)["id"], "menu item ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cookProfileID, ok := mc.ownProfile(w, r, ctx)
	if !ok {
		return
	}
	existing, err := mc.Menu.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing.CookProfileID != cookProfileID {
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, "You can only delete your own menu items")
		return
	}

	if err := mc.Menu.Delete(ctx, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Menu item deleted successfully")
}
