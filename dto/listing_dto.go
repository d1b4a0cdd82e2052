package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/models"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// CreateListingRequest is the flat write shape for publishing a listing.
// The host is injected from the authenticated principal; identity,
// timestamps and the active flag are server-owned.
type CreateListingRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`

	Address    string `json:"address" binding:"required,max=500"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"required,max=100"`
	Country    string `json:"country" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`

	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`

	PropertyType string `json:"property_type" binding:"required,oneof=apartment house villa cabin condo loft studio"`
	Bedrooms     uint   `json:"bedrooms"`
	Bathrooms    uint   `json:"bathrooms"`
	MaxGuests    uint   `json:"max_guests" binding:"required,min=1"`

	PricePerNight decimal.Decimal  `json:"price_per_night" binding:"required"`
	CleaningFee   *decimal.Decimal `json:"cleaning_fee"`
	ServiceFee    *decimal.Decimal `json:"service_fee"`

	Amenities  []string `json:"amenities"`
	HouseRules []string `json:"house_rules"`

	IsInstantBookable bool `json:"is_instant_bookable"`
}

// UpdateListingRequest is a partial update; nil fields are left untouched.
// IsActive is included so a host can soft-disable a listing.
type UpdateListingRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`

	Address    *string `json:"address,omitempty" binding:"omitempty,max=500"`
	City       *string `json:"city,omitempty" binding:"omitempty,max=100"`
	State      *string `json:"state,omitempty" binding:"omitempty,max=100"`
	Country    *string `json:"country,omitempty" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code,omitempty" binding:"omitempty,max=20"`

	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`

	PropertyType *string `json:"property_type,omitempty" binding:"omitempty,oneof=apartment house villa cabin condo loft studio"`
	Bedrooms     *uint   `json:"bedrooms,omitempty"`
	Bathrooms    *uint   `json:"bathrooms,omitempty"`
	MaxGuests    *uint   `json:"max_guests,omitempty" binding:"omitempty,min=1"`

	PricePerNight *decimal.Decimal `json:"price_per_night,omitempty"`
	CleaningFee   *decimal.Decimal `json:"cleaning_fee,omitempty"`
	ServiceFee    *decimal.Decimal `json:"service_fee,omitempty"`

	Amenities  *[]string `json:"amenities,omitempty"`
	HouseRules *[]string `json:"house_rules,omitempty"`

	IsActive          *bool `json:"is_active,omitempty"`
	IsInstantBookable *bool `json:"is_instant_bookable,omitempty"`
}

// ListingResponse is the nested read shape: related entities expanded plus
// the derived rating aggregates, which are recomputed on every read.
type ListingResponse struct {
	ID uint `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`

	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`

	PropertyType string `json:"property_type"`
	Bedrooms     uint   `json:"bedrooms"`
	Bathrooms    uint   `json:"bathrooms"`
	MaxGuests    uint   `json:"max_guests"`

	PricePerNight decimal.Decimal `json:"price_per_night"`
	CleaningFee   decimal.Decimal `json:"cleaning_fee"`
	ServiceFee    decimal.Decimal `json:"service_fee"`

	Amenities  []string `json:"amenities"`
	HouseRules []string `json:"house_rules"`

	Host UserResponse `json:"host"`

	IsActive          bool `json:"is_active"`
	IsInstantBookable bool `json:"is_instant_bookable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
}

func NewListingResponse(l *models.Listing, averageRating float64, totalReviews int64) ListingResponse {
	return ListingResponse{
		ID:                l.ID,
		Title:             l.Title,
		Description:       l.Description,
		Address:           l.Address,
		City:              l.City,
		State:             l.State,
		Country:           l.Country,
		PostalCode:        l.PostalCode,
		Latitude:          l.Latitude,
		Longitude:         l.Longitude,
		PropertyType:      l.PropertyType,
		Bedrooms:          l.Bedrooms,
		Bathrooms:         l.Bathrooms,
		MaxGuests:         l.MaxGuests,
		PricePerNight:     l.PricePerNight,
		CleaningFee:       l.CleaningFee,
		ServiceFee:        l.ServiceFee,
		Amenities:         []string(l.Amenities),
		HouseRules:        []string(l.HouseRules),
		Host:              NewUserResponse(&l.Host),
		IsActive:          l.IsActive,
		IsInstantBookable: l.IsInstantBookable,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
		Reviews:           NewReviewResponses(l.Reviews),
		AverageRating:     averageRating,
		TotalReviews:      totalReviews,
	}
}
