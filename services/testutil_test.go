package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-backend/models"
	"rental-backend/utils"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		FirstName: "Test",
		LastName:  "User",
		Password:  "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createTestListing inserts the canonical test listing: 100.00 per night,
// 20.00 cleaning, 10.00 service, sleeps 4.
func createTestListing(t *testing.T, db *gorm.DB, hostID uint) models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:         "Beautiful cabin in Toronto",
		Description:   "Stunning cabin located in the heart of Toronto.",
		Address:       "123 Main St",
		City:          "Toronto",
		State:         "ON",
		Country:       "Canada",
		PostalCode:    "M5V 2T6",
		PropertyType:  models.PropertyTypeCabin,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PricePerNight: decimal.RequireFromString("100.00"),
		CleaningFee:   decimal.RequireFromString("20.00"),
		ServiceFee:    decimal.RequireFromString("10.00"),
		Amenities:     datatypes.NewJSONSlice([]string{"WiFi", "Kitchen"}),
		HouseRules:    datatypes.NewJSONSlice([]string{"No smoking"}),
		HostID:        hostID,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func createTestBooking(t *testing.T, db *gorm.DB, listing models.Listing, guestID uint, status string) models.Booking {
	t.Helper()
	booking := models.Booking{
		ListingID:      listing.ID,
		GuestID:        guestID,
		ReferenceCode:  utils.NewReferenceCode(),
		CheckInDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		TotalPrice:     decimal.RequireFromString("330.00"),
		Status:         status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func createTestReview(t *testing.T, db *gorm.DB, booking models.Booking, rating int) models.Review {
	t.Helper()
	review := models.Review{
		ListingID: booking.ListingID,
		GuestID:   booking.GuestID,
		BookingID: booking.ID,
		Rating:    rating,
		Comment:   "Great place to stay!",
	}
	require.NoError(t, db.Create(&review).Error)
	return review
}
