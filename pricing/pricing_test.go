package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleListing() *models.Listing {
	return &models.Listing{
		ID:            1,
		Title:         "Beautiful apartment in Chicago",
		MaxGuests:     4,
		PricePerNight: decimal.RequireFromString("100.00"),
		CleaningFee:   decimal.RequireFromString("20.00"),
		ServiceFee:    decimal.RequireFromString("10.00"),
		IsActive:      true,
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(day(2024, 6, 1), day(2024, 6, 4)))
	assert.Equal(t, 1, Nights(day(2024, 6, 30), day(2024, 7, 1)))
	assert.Equal(t, 0, Nights(day(2024, 6, 1), day(2024, 6, 1)))
}

func TestComputeTotalPrice(t *testing.T) {
	total, err := ComputeTotalPrice(sampleListing(), day(2024, 6, 1), day(2024, 6, 4))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("330.00")),
		"expected 330.00, got %s", total)
}

func TestComputeTotalPrice_ExactDecimalArithmetic(t *testing.T) {
	listing := sampleListing()
	listing.PricePerNight = decimal.RequireFromString("99.99")
	listing.CleaningFee = decimal.RequireFromString("0.01")
	listing.ServiceFee = decimal.RequireFromString("0.02")

	// 7 * 99.99 + 0.01 + 0.02 = 699.96, exactly
	total, err := ComputeTotalPrice(listing, day(2024, 6, 1), day(2024, 6, 8))
	require.NoError(t, err)
	assert.Equal(t, "699.96", total.String())
}

func TestComputeTotalPrice_CheckoutBeforeCheckin(t *testing.T) {
	_, err := ComputeTotalPrice(sampleListing(), day(2024, 6, 4), day(2024, 6, 1))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "check-out date must be after check-in date", err.Error())
}

func TestComputeTotalPrice_SameDay(t *testing.T) {
	_, err := ComputeTotalPrice(sampleListing(), day(2024, 6, 1), day(2024, 6, 1))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestValidateBookingRequest(t *testing.T) {
	err := ValidateBookingRequest(sampleListing(), day(2024, 6, 1), day(2024, 6, 4), 2)
	assert.NoError(t, err)
}

func TestValidateBookingRequest_GuestsExceedCapacity(t *testing.T) {
	err := ValidateBookingRequest(sampleListing(), day(2024, 6, 1), day(2024, 6, 4), 5)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "number of guests (5) exceeds maximum allowed (4)", err.Error())
}

func TestValidateBookingRequest_InactiveListing(t *testing.T) {
	listing := sampleListing()
	listing.IsActive = false
	err := ValidateBookingRequest(listing, day(2024, 6, 1), day(2024, 6, 4), 2)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "this listing is not available for booking", err.Error())
}

// Pins the short-circuit order: date order first, then capacity, then the
// active flag.
func TestValidateBookingRequest_CheckOrder(t *testing.T) {
	listing := sampleListing()
	listing.IsActive = false

	err := ValidateBookingRequest(listing, day(2024, 6, 4), day(2024, 6, 1), 99)
	require.Error(t, err)
	assert.Equal(t, "check-out date must be after check-in date", err.Error())

	err = ValidateBookingRequest(listing, day(2024, 6, 1), day(2024, 6, 4), 99)
	require.Error(t, err)
	assert.Equal(t, "number of guests (99) exceeds maximum allowed (4)", err.Error())

	err = ValidateBookingRequest(listing, day(2024, 6, 1), day(2024, 6, 4), 2)
	require.Error(t, err)
	assert.Equal(t, "this listing is not available for booking", err.Error())
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating("rating", 1))
	assert.NoError(t, ValidateRating("rating", 5))

	err := ValidateRating("rating", 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "rating must be between 1 and 5", err.Error())

	err = ValidateRating("cleanliness_rating", 6)
	require.Error(t, err)
	assert.Equal(t, "cleanliness_rating must be between 1 and 5", err.Error())
}
