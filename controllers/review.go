package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"homebites/services"
	"homebites/utils"
)

// ReviewController handles review requests
type ReviewController struct {
	Reviews *services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type reviewRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	CookID   string `json:"cook_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// CreateReview adds a review and refreshes the cook's aggregated rating
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid input")
		return
	}
	userID, ok := objectIDParam(w, req.UserID, "user ID")
	if !ok {
		return
	}
	cookID, ok := objectIDParam(w, req.CookID, "cook ID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	review, err := rc.Reviews.Create(ctx, services.ReviewInput{
		UserID:   userID,
		UserName: req.UserName,
		CookID:   cookID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, review, "Review added successfully")
}

// GetReviews lists reviews filtered by cook or user, newest first
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.ReviewFilter{}

	if v := query.Get("cookId"); v != "" {
		id, ok := objectIDParam(w, v, "cook ID")
		if !ok {
			return
		}
		filter.CookID = id
	}
	if v := query.Get("userId"); v != "" {
		id, ok := objectIDParam(w, v, "user ID")
		if !ok {
			return
		}
		filter.UserID = id
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reviews, err := rc.Reviews.List(ctx, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, reviews, "")
}
