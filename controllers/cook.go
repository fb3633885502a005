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
)

// CookController handles cook profile requests
type CookController struct {
	Cooks *services.CookService
}

// NewCookController creates a new CookController
func NewCookController(cooks *services.CookService) *CookController {
	return &CookController{Cooks: cooks}
}

type cookProfileRequest struct {
	BusinessName string   `json:"business_name"`
	Description  string   `json:"description"`
	Cuisine      []string `json:"cuisine"`
	Specialties  []string `json:"specialties"`
	Location     string   `json:"location"`
	PriceRange   string   `json:"price_range"`
	DeliveryTime string   `json:"delivery_time"`
}

// GetCooks lists cook profiles, optionally only featured ones
func (cc *CookController) GetCooks(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cooks, err := cc.Cooks.List(ctx, featuredOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cooks, "")
}

// GetCookByID retrieves a single cook profile
func (cc *CookController) GetCookByID(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, mux.Vars(r)["id"], "cook profile ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cook, err := cc.Cooks.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cook, "")
}

// GetOwnProfile retrieves the authenticated cook's own profile
func (cc *CookController) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "Could not parse user from context")
		return
	}
	userID, ok := objectIDParam(w, claims.UserID, "user ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cook, err := cc.Cooks.GetByUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cook, "")
}

// CreateCook registers a cook profile for the authenticated cook account
func (cc *CookController) CreateCook(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "Could not parse user from context")
		return
	}
	userID, ok := objectIDParam(w, claims.UserID, "user ID")
	if !ok {
		return
	}

	var req cookProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cook, err := cc.Cooks.Create(ctx, services.CookProfileInput{
		UserID:       userID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Specialties:  req.Specialties,
		Location:     req.Location,
		PriceRange:   req.PriceRange,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, cook, "Cook profile created successfully")
}

// UpdateCook rewrites the authenticated cook's storefront fields
func (cc *CookController) UpdateCook(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "Could not parse user from context")
		return
	}
	id, ok := objectIDParam(w, mux.Vars(r)["id"], "cook profile ID")
	if !ok {
		return
	}
	userID, ok := objectIDParam(w, claims.UserID, "user ID")
	if !ok {
		return
	}

	var req cookProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := cc.Cooks.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing.UserID != userID {
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, "You can only update your own profile")
		return
	}

	cook, err := cc.Cooks.Update(ctx, id, services.CookProfileInput{
		UserID:       userID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Specialties:  req.Specialties,
		Location:     req.Location,
		PriceRange:   req.PriceRange,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, cook, "Cook profile updated successfully")
}
