package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/dto"
	"rental-backend/models"
	"rental-backend/pricing"
)

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)

	five := 5
	review, err := svc.Create(guest.ID, dto.CreateReviewRequest{
		BookingID:         booking.ID,
		Rating:            4,
		Comment:           "Beautiful property, exactly as described.",
		CleanlinessRating: &five,
	})
	require.NoError(t, err)

	// listing and guest derive from the booking, not the payload
	assert.Equal(t, listing.ID, review.ListingID)
	assert.Equal(t, guest.ID, review.GuestID)
	assert.Equal(t, booking.ID, review.BookingID)
	assert.Equal(t, 4, review.Rating)
	require.NotNil(t, review.CleanlinessRating)
	assert.Equal(t, 5, *review.CleanlinessRating)
	assert.Nil(t, review.LocationRating)
	assert.Equal(t, guest.Username, review.Guest.Username)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(guest.ID, dto.CreateReviewRequest{
			BookingID: booking.ID,
			Rating:    rating,
		})
		require.Error(t, err)
		assert.True(t, pricing.IsValidationError(err))
		assert.Equal(t, "rating must be between 1 and 5", err.Error())
	}
}

func TestCreateReview_SubRatingOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)

	bad := 9
	_, err := svc.Create(guest.ID, dto.CreateReviewRequest{
		BookingID:      booking.ID,
		Rating:         4,
		LocationRating: &bad,
	})
	require.Error(t, err)
	assert.True(t, pricing.IsValidationError(err))
	assert.Equal(t, "location_rating must be between 1 and 5", err.Error())
}

func TestCreateReview_OnePerBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)

	_, err := svc.Create(guest.ID, dto.CreateReviewRequest{BookingID: booking.ID, Rating: 5})
	require.NoError(t, err)

	// second review for the same booking is a conflict, not a validation error
	_, err = svc.Create(guest.ID, dto.CreateReviewRequest{BookingID: booking.ID, Rating: 3})
	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.False(t, pricing.IsValidationError(err))
}

func TestCreateReview_ForbiddenWhenNotBookingGuest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	other := createTestUser(t, db, "other")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)

	_, err := svc.Create(other.ID, dto.CreateReviewRequest{BookingID: booking.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateReview_BookingNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	guest := createTestUser(t, db, "guest1")

	_, err := svc.Create(guest.ID, dto.CreateReviewRequest{BookingID: 77, Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListForListing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	other := createTestUser(t, db, "guest2")
	listing := createTestListing(t, db, host.ID)

	b1 := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)
	b2 := createTestBooking(t, db, listing, other.ID, models.BookingStatusCompleted)
	createTestReview(t, db, b1, 5)
	createTestReview(t, db, b2, 3)

	reviews, err := svc.ListForListing(listing.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = svc.ListForListing(404)
	assert.ErrorIs(t, err, ErrListingNotFound)
}
