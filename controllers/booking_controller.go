// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/dto"
	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
	ListingSvc *services.ListingService
}

func NewBookingController(bookingSvc *services.BookingService, listingSvc *services.ListingService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, ListingSvc: listingSvc}
}

func (bc *BookingController) response(b *models.Booking) (dto.BookingResponse, error) {
	listingResp, err := bc.ListingSvc.Response(&b.Listing)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	return dto.NewBookingResponse(b, listingResp), nil
}

// GetBookings lists the authenticated user's bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	guestID, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	bookings, err := bc.BookingSvc.ListForGuest(guestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := bc.response(&bookings[i])
		if err != nil {
			respondServiceError(c, err)
			return
		}
		responses = append(responses, resp)
	}
	utils.JSONSuccess(c, http.StatusOK, responses)
}

// GetBookingByID returns one booking. Visible to its guest and to the
// listing's host.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	userID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if booking.GuestID != userID && booking.Listing.HostID != userID {
		respondServiceError(c, services.ErrForbidden)
		return
	}

	resp, err := bc.response(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// CreateBooking reserves a listing for the authenticated guest. The guest
// is always taken from the token, never from the payload.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	guestID, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.BookingSvc.Create(guestID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := bc.response(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, resp)
}

// UpdateBooking edits a booking owned by the authenticated guest.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	guestID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.BookingSvc.Update(id, guestID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := bc.response(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// UpdateBookingStatus transitions a booking's lifecycle status.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	userID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.BookingSvc.UpdateStatus(id, userID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp, err := bc.response(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// DeleteBooking removes a booking owned by the authenticated guest.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	guestID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.BookingSvc.Delete(id, guestID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
