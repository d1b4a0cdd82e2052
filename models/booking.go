package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking status values. New bookings start as pending; payment and
// cancellation workflows move them forward from outside this service.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// IsValidBookingStatus reports whether s is a known booking status.
func IsValidBookingStatus(s string) bool {
	for _, bs := range BookingStatuses {
		if bs == s {
			return true
		}
	}
	return false
}

// Booking is a guest's reservation of a listing for a date range.
// TotalPrice is server-computed at save time whenever it is absent and is
// never accepted from clients.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint `gorm:"index;column:listing_id" json:"listing_id"`
	GuestID   uint `gorm:"index;column:guest_id" json:"guest_id"`

	ReferenceCode string `gorm:"uniqueIndex;size:64;column:reference_code" json:"reference_code"`

	CheckInDate  time.Time `gorm:"type:date;column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;column:check_out_date" json:"check_out_date"`

	NumberOfGuests uint `gorm:"column:number_of_guests" json:"number_of_guests"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);column:total_price" json:"total_price"`
	Status     string          `gorm:"size:20;default:pending;index" json:"status"`

	SpecialRequests string `gorm:"type:text;column:special_requests" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	Guest   User    `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`
}
