package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-backend/dto"
	"rental-backend/services"
	"rental-backend/utils"
)

type ListingController struct {
	ListingSvc *services.ListingService
}

func NewListingController(svc *services.ListingService) *ListingController {
	return &ListingController{ListingSvc: svc}
}

// GetListings lists listings, optionally filtered by city, country,
// property_type and is_active.
func (lc *ListingController) GetListings(c *gin.Context) {
	filters := services.ListingFilters{
		City:         c.Query("city"),
		Country:      c.Query("country"),
		PropertyType: c.Query("property_type"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid is_active, expected true or false")
			return
		}
		filters.IsActive = &active
	}

	listings, err := lc.ListingSvc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	responses, err := lc.ListingSvc.Responses(listings)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, responses)
}

// GetListingByID returns a single listing in its read shape.
func (lc *ListingController) GetListingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	listing, err := lc.ListingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := lc.ListingSvc.Response(listing)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// CreateListing publishes a listing owned by the authenticated host.
func (lc *ListingController) CreateListing(c *gin.Context) {
	hostID, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := lc.ListingSvc.Create(hostID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := lc.ListingSvc.Response(listing)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, resp)
}

// UpdateListing applies a partial update by the owning host.
func (lc *ListingController) UpdateListing(c *gin.Context) {
	hostID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := lc.ListingSvc.Update(id, hostID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := lc.ListingSvc.Response(listing)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// DeleteListing removes a listing and its dependents.
func (lc *ListingController) DeleteListing(c *gin.Context) {
	hostID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := lc.ListingSvc.Delete(id, hostID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
