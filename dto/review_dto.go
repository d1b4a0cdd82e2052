package dto

import (
	"time"

	"rental-backend/models"
)

// CreateReviewRequest is the write shape for reviewing a booking. The
// acting guest and the listing are derived from the booking, never from
// the client.
type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`

	CleanlinessRating   *int `json:"cleanliness_rating,omitempty"`
	CommunicationRating *int `json:"communication_rating,omitempty"`
	CheckInRating       *int `json:"check_in_rating,omitempty"`
	AccuracyRating      *int `json:"accuracy_rating,omitempty"`
	LocationRating      *int `json:"location_rating,omitempty"`
	ValueRating         *int `json:"value_rating,omitempty"`
}

// ReviewResponse is the read shape of a review as returned standalone and
// nested inside a listing.
type ReviewResponse struct {
	ID      uint         `json:"id"`
	Guest   UserResponse `json:"guest"`
	Rating  int          `json:"rating"`
	Comment string       `json:"comment"`

	CleanlinessRating   *int `json:"cleanliness_rating"`
	CommunicationRating *int `json:"communication_rating"`
	CheckInRating       *int `json:"check_in_rating"`
	AccuracyRating      *int `json:"accuracy_rating"`
	LocationRating      *int `json:"location_rating"`
	ValueRating         *int `json:"value_rating"`

	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		Guest:               NewUserResponse(&r.Guest),
		Rating:              r.Rating,
		Comment:             r.Comment,
		CleanlinessRating:   r.CleanlinessRating,
		CommunicationRating: r.CommunicationRating,
		CheckInRating:       r.CheckInRating,
		AccuracyRating:      r.AccuracyRating,
		LocationRating:      r.LocationRating,
		ValueRating:         r.ValueRating,
		CreatedAt:           r.CreatedAt,
	}
}

func NewReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
