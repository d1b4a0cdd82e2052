package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Property types a listing can be published as.
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeHouse     = "house"
	PropertyTypeVilla     = "villa"
	PropertyTypeCabin     = "cabin"
	PropertyTypeCondo     = "condo"
	PropertyTypeLoft      = "loft"
	PropertyTypeStudio    = "studio"
)

var PropertyTypes = []string{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeVilla,
	PropertyTypeCabin,
	PropertyTypeCondo,
	PropertyTypeLoft,
	PropertyTypeStudio,
}

// IsValidPropertyType reports whether t is one of the published property types.
func IsValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Listing is a bookable property owned by exactly one host.
type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:200" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Address    string `gorm:"size:500" json:"address"`
	City       string `gorm:"size:100;index" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	Country    string `gorm:"size:100;index" json:"country"`
	PostalCode string `gorm:"size:20;column:postal_code" json:"postal_code"`

	// 6 fractional digits, optional
	Latitude  *decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude *decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude"`

	PropertyType string `gorm:"size:20;index;column:property_type" json:"property_type"`
	Bedrooms     uint   `json:"bedrooms"`
	Bathrooms    uint   `json:"bathrooms"`
	MaxGuests    uint   `gorm:"column:max_guests" json:"max_guests"`

	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);column:price_per_night" json:"price_per_night"`
	CleaningFee   decimal.Decimal `gorm:"type:decimal(10,2);default:0;column:cleaning_fee" json:"cleaning_fee"`
	ServiceFee    decimal.Decimal `gorm:"type:decimal(10,2);default:0;column:service_fee" json:"service_fee"`

	// ordered free-text tags
	Amenities  datatypes.JSONSlice[string] `json:"amenities"`
	HouseRules datatypes.JSONSlice[string] `gorm:"column:house_rules" json:"house_rules"`

	HostID uint `gorm:"index;column:host_id" json:"host_id"`

	IsActive          bool `gorm:"default:true;column:is_active" json:"is_active"`
	IsInstantBookable bool `gorm:"default:false;column:is_instant_bookable" json:"is_instant_bookable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Host     User      `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ListingID" json:"reviews,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ListingID" json:"-"`
}
