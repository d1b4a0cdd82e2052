package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/dto"
	"rental-backend/services"
	"rental-backend/utils"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// CreateReview records the authenticated guest's review of a booking.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	guestID, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := rc.ReviewSvc.Create(guestID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, dto.NewReviewResponse(review))
}

// GetListingReviews lists a listing's reviews, newest first.
func (rc *ReviewController) GetListingReviews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reviews, err := rc.ReviewSvc.ListForListing(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dto.NewReviewResponses(reviews))
}
