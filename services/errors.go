package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// Error codes returned by the service layer. Controllers translate these
// into HTTP statuses; everything else is treated as an internal error.
var (
	ErrUserNotFound       = errors.New("user_not_found")
	ErrListingNotFound    = errors.New("listing_not_found")
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateReview    = errors.New("review_already_exists")
	ErrDuplicateUser      = errors.New("user_already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// isDuplicateErr classifies unique-constraint violations. MySQL reports
// error 1062; other drivers are matched on the message.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}
