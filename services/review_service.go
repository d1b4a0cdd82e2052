package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-backend/dto"
	"rental-backend/models"
	"rental-backend/pricing"
)

// ReviewService owns review persistence. One review per booking; the
// database unique indexes back the check, and violations surface as a
// conflict rather than a validation error.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func validateSubRatings(req dto.CreateReviewRequest) error {
	subs := []struct {
		name  string
		value *int
	}{
		{"cleanliness_rating", req.CleanlinessRating},
		{"communication_rating", req.CommunicationRating},
		{"check_in_rating", req.CheckInRating},
		{"accuracy_rating", req.AccuracyRating},
		{"location_rating", req.LocationRating},
		{"value_rating", req.ValueRating},
	}
	for _, sub := range subs {
		if sub.value == nil {
			continue
		}
		if err := pricing.ValidateRating(sub.name, *sub.value); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a review for a booking. The listing and guest references
// come from the booking itself; the acting user must be the booking's
// guest.
func (s *ReviewService) Create(guestID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	if err := pricing.ValidateRating("rating", req.Rating); err != nil {
		return nil, err
	}
	if err := validateSubRatings(req); err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := s.DB.First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	if booking.GuestID != guestID {
		return nil, ErrForbidden
	}

	review := models.Review{
		ListingID:           booking.ListingID,
		GuestID:             guestID,
		BookingID:           booking.ID,
		Rating:              req.Rating,
		Comment:             req.Comment,
		CleanlinessRating:   req.CleanlinessRating,
		CommunicationRating: req.CommunicationRating,
		CheckInRating:       req.CheckInRating,
		AccuracyRating:      req.AccuracyRating,
		LocationRating:      req.LocationRating,
		ValueRating:         req.ValueRating,
	}
	if err := s.DB.Create(&review).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.DB.Preload("Guest").First(&review, review.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve review: %w", err)
	}
	return &review, nil
}

// ListForListing returns a listing's reviews, newest first.
func (s *ReviewService) ListForListing(listingID uint) ([]models.Review, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve listing: %w", err)
	}

	var reviews []models.Review
	err := s.DB.Preload("Guest").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}
