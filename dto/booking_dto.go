package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/models"
)

// CreateBookingRequest is the flat write shape for reserving a listing.
// The guest is injected from the authenticated principal and total_price
// is always server-computed.
type CreateBookingRequest struct {
	ListingID       uint   `json:"listing_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  uint   `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingRequest is a partial edit of a pending booking. Setting
// recalculate clears the stored total so the save path recomputes it;
// otherwise the price fixed at creation is kept.
type UpdateBookingRequest struct {
	CheckInDate     *string `json:"check_in_date,omitempty"`
	CheckOutDate    *string `json:"check_out_date,omitempty"`
	NumberOfGuests  *uint   `json:"number_of_guests,omitempty" binding:"omitempty,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Recalculate     bool    `json:"recalculate,omitempty"`
}

// UpdateBookingStatusRequest moves a booking through its lifecycle.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// BookingResponse is the nested read shape: listing and guest expanded,
// dates in YYYY-MM-DD form.
type BookingResponse struct {
	ID            uint            `json:"id"`
	ReferenceCode string          `json:"reference_code"`
	Listing       ListingResponse `json:"listing"`
	Guest         UserResponse    `json:"guest"`

	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`

	NumberOfGuests uint `json:"number_of_guests"`

	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`

	SpecialRequests string `json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBookingResponse(b *models.Booking, listing ListingResponse) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ReferenceCode:   b.ReferenceCode,
		Listing:         listing,
		Guest:           NewUserResponse(&b.Guest),
		CheckInDate:     b.CheckInDate.Format(DateLayout),
		CheckOutDate:    b.CheckOutDate.Format(DateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
