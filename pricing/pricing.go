// Package pricing holds the booking rule set: total price computation and
// cross-field validation of a booking request. Everything here is a pure
// function over the listing and the request; persistence calls in from the
// service layer.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/models"
)

// ValidationError is a domain rule failure. The message is safe to return
// to clients verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Nights is the whole-day count between two dates. Both are expected to be
// midnight date values.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ComputeTotalPrice returns nights * price_per_night + cleaning_fee +
// service_fee in fixed-point decimal. Fails when checkOut is not strictly
// after checkIn.
func ComputeTotalPrice(listing *models.Listing, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	if !checkOut.After(checkIn) {
		return decimal.Zero, validationErrorf("check-out date must be after check-in date")
	}

	nights := decimal.NewFromInt(int64(Nights(checkIn, checkOut)))
	total := listing.PricePerNight.Mul(nights).
		Add(listing.CleaningFee).
		Add(listing.ServiceFee)
	return total, nil
}

// ValidateBookingRequest runs the cross-field checks for a booking request
// against its listing. Checks short-circuit in a fixed order: date order,
// then guest capacity, then the listing's active flag.
func ValidateBookingRequest(listing *models.Listing, checkIn, checkOut time.Time, guestCount uint) error {
	if !checkOut.After(checkIn) {
		return validationErrorf("check-out date must be after check-in date")
	}
	if guestCount > listing.MaxGuests {
		return validationErrorf("number of guests (%d) exceeds maximum allowed (%d)", guestCount, listing.MaxGuests)
	}
	if !listing.IsActive {
		return validationErrorf("this listing is not available for booking")
	}
	return nil
}

// ValidateRating checks an overall or sub-rating value against the 1..5 scale.
func ValidateRating(name string, rating int) error {
	if rating < 1 || rating > 5 {
		return validationErrorf("%s must be between 1 and 5", name)
	}
	return nil
}
