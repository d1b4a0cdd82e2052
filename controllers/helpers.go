package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-backend/middleware"
	"rental-backend/pricing"
	"rental-backend/services"
	"rental-backend/utils"
)

// respondServiceError maps service-layer errors onto HTTP statuses.
// Validation failures and uniqueness conflicts are surfaced verbatim;
// anything unclassified is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case pricing.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrListingNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrDuplicateUser):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

// mustCurrentUser reads the authenticated principal set by the auth
// middleware, rejecting the request when it is missing.
func mustCurrentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return id, true
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id64), true
}
