package controllers

import (
	"errors"
	"log"
	"net/http"

	"homebites/services"
	"homebites/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// writeServiceError maps the service error taxonomy onto HTTP status codes
// and the stable error codes of the failure envelope. Unrecognized errors
// are logged and surfaced as an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *services.ValidationError
	var unavailable *services.UnavailableItemError
	var transition *services.StatusTransitionError

	switch {
	case errors.As(err, &validation):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, err.Error())
	case errors.As(err, &unavailable),
		errors.Is(err, services.ErrItemNotAvailable),
		errors.Is(err, services.ErrCartCookClash),
		errors.Is(err, services.ErrEmptyCart):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeConflict, err.Error())
	case errors.As(err, &transition), errors.Is(err, services.ErrOrderNotDeletable):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeStateConflict, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCookNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrOrderNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrCookProfileHeld):
		utils.WriteError(w, http.StatusConflict, utils.CodeConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrEmailNotVerified):
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotACook):
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, utils.CodeInternal, "Internal server error")
	}
}

// objectIDParam parses a required hex ObjectID from a request value. The
// bool result reports success; on failure the 400 is already written.
func objectIDParam(w http.ResponseWriter, value, name string) (primitive.ObjectID, bool) {
	if value == "" {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, name+" is required")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeValidation, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
