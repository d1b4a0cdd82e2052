package models

import (
	"time"
)

// Review is a guest's rating of a stay. Exactly one review per booking;
// the composite unique index mirrors that redundantly on
// (listing, guest, booking).
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint `gorm:"index;uniqueIndex:idx_review_listing_guest_booking;column:listing_id" json:"listing_id"`
	GuestID   uint `gorm:"uniqueIndex:idx_review_listing_guest_booking;column:guest_id" json:"guest_id"`
	BookingID uint `gorm:"uniqueIndex;uniqueIndex:idx_review_listing_guest_booking;column:booking_id" json:"booking_id"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	// optional sub-ratings, each 1..5 when present
	CleanlinessRating   *int `gorm:"column:cleanliness_rating" json:"cleanliness_rating"`
	CommunicationRating *int `gorm:"column:communication_rating" json:"communication_rating"`
	CheckInRating       *int `gorm:"column:check_in_rating" json:"check_in_rating"`
	AccuracyRating      *int `gorm:"column:accuracy_rating" json:"accuracy_rating"`
	LocationRating      *int `gorm:"column:location_rating" json:"location_rating"`
	ValueRating         *int `gorm:"column:value_rating" json:"value_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	Guest   User    `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`
	Booking Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
}
