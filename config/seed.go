package config

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rental-backend/models"
	"rental-backend/pricing"
	"rental-backend/utils"
)

// Seed sizing, matching the original sample-data defaults.
const (
	seedUsers    = 10
	seedListings = 20
	seedBookings = 30
	seedReviews  = 50
)

type seedCity struct {
	city, state, country string
}

var seedCities = []seedCity{
	{"New York", "NY", "USA"},
	{"Los Angeles", "CA", "USA"},
	{"Chicago", "IL", "USA"},
	{"Miami", "FL", "USA"},
	{"San Francisco", "CA", "USA"},
	{"Paris", "Île-de-France", "France"},
	{"London", "England", "UK"},
	{"Tokyo", "Tokyo", "Japan"},
	{"Sydney", "NSW", "Australia"},
	{"Toronto", "ON", "Canada"},
}

var seedAmenities = [][]string{
	{"WiFi", "Kitchen", "Free parking"},
	{"WiFi", "Kitchen", "Pool", "Gym"},
	{"WiFi", "Kitchen", "Air conditioning", "Heating"},
	{"WiFi", "Kitchen", "Washer", "Dryer"},
	{"WiFi", "Kitchen", "Balcony", "Garden"},
	{"WiFi", "Kitchen", "Hot tub", "Fireplace"},
}

var seedHouseRules = [][]string{
	{"No smoking", "No pets"},
	{"No smoking", "No parties"},
	{"No smoking", "Quiet hours after 10 PM"},
	{"No smoking", "No shoes inside"},
	{"No smoking", "No loud music"},
}

var seedStreets = []string{"Main St", "Oak Ave", "Pine Rd", "Elm St"}

var seedRequests = []string{
	"", "Early check-in if possible", "Late check-out requested",
	"Extra towels needed", "Quiet room preferred",
}

var seedComments = []string{
	"Great place to stay! Very clean and comfortable.",
	"Perfect location, easy access to everything.",
	"The host was very responsive and helpful.",
	"Beautiful property, exactly as described.",
	"Highly recommend this place for your stay.",
	"Excellent value for money.",
	"The amenities were top-notch.",
	"Very peaceful and quiet neighborhood.",
	"The check-in process was smooth.",
	"Would definitely stay here again!",
	"The place was spotless and well-maintained.",
	"Great communication with the host.",
	"Perfect for our family vacation.",
	"The location was ideal for exploring the city.",
	"Very comfortable beds and good amenities.",
}

func seedDecimal(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

func intPtr(v int) *int { return &v }

// SeedDatabase fills an empty database with sample users, listings,
// bookings and reviews. Idempotent: skips any table that already has rows.
func SeedDatabase(db *gorm.DB) {
	users := seedUserRecords(db)
	listings := seedListingRecords(db, users)
	bookings := seedBookingRecords(db, listings, users)
	seedReviewRecords(db, bookings)
}

func seedUserRecords(db *gorm.DB) []models.User {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		var users []models.User
		db.Find(&users)
		return users
	}

	hash, err := utils.HashPassword("password123")
	if err != nil {
		log.Printf("warning: failed to hash seed password: %v", err)
		return nil
	}

	users := make([]models.User, 0, seedUsers)
	for i := 1; i <= seedUsers; i++ {
		user := models.User{
			Username:  fmt.Sprintf("user%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Password:  hash,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("warning: failed to seed user %s: %v", user.Username, err)
			continue
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))
	return users
}

func seedListingRecords(db *gorm.DB, users []models.User) []models.Listing {
	var count int64
	db.Model(&models.Listing{}).Count(&count)
	if count > 0 || len(users) == 0 {
		var listings []models.Listing
		db.Find(&listings)
		return listings
	}

	listings := make([]models.Listing, 0, seedListings)
	for i := 0; i < seedListings; i++ {
		loc := seedCities[rand.Intn(len(seedCities))]
		propertyType := models.PropertyTypes[rand.Intn(len(models.PropertyTypes))]
		host := users[rand.Intn(len(users))]

		basePrice := float64(50 + rand.Intn(251))
		if propertyType == models.PropertyTypeVilla || propertyType == models.PropertyTypeHouse {
			basePrice *= 1.5
		}
		switch loc.city {
		case "New York", "San Francisco", "Paris", "London":
			basePrice *= 1.8
		}

		lat := decimal.NewFromFloat(20 + rand.Float64()*40).Round(6)
		lng := decimal.NewFromFloat(-180 + rand.Float64()*360).Round(6)

		listing := models.Listing{
			Title: fmt.Sprintf("Beautiful %s in %s", propertyType, loc.city),
			Description: fmt.Sprintf(
				"Stunning %s located in the heart of %s. Perfect for your next vacation with all the amenities you need.",
				propertyType, loc.city),
			Address:           fmt.Sprintf("%d %s", 100+rand.Intn(9900), seedStreets[rand.Intn(len(seedStreets))]),
			City:              loc.city,
			State:             loc.state,
			Country:           loc.country,
			PostalCode:        fmt.Sprintf("%d", 10000+rand.Intn(90000)),
			Latitude:          &lat,
			Longitude:         &lng,
			PropertyType:      propertyType,
			Bedrooms:          uint(1 + rand.Intn(5)),
			Bathrooms:         uint(1 + rand.Intn(3)),
			MaxGuests:         uint(2 + rand.Intn(7)),
			PricePerNight:     seedDecimal(basePrice),
			CleaningFee:       seedDecimal(float64(20 + rand.Intn(81))),
			ServiceFee:        seedDecimal(float64(10 + rand.Intn(41))),
			Amenities:         datatypes.NewJSONSlice(seedAmenities[rand.Intn(len(seedAmenities))]),
			HouseRules:        datatypes.NewJSONSlice(seedHouseRules[rand.Intn(len(seedHouseRules))]),
			HostID:            host.ID,
			IsActive:          rand.Intn(4) != 0, // 75% active
			IsInstantBookable: rand.Intn(2) == 0,
		}
		if err := db.Create(&listing).Error; err != nil {
			log.Printf("warning: failed to seed listing %q: %v", listing.Title, err)
			continue
		}
		listings = append(listings, listing)
	}
	log.Printf("Seeded %d listings", len(listings))
	return listings
}

func seedBookingRecords(db *gorm.DB, listings []models.Listing, users []models.User) []models.Booking {
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count > 0 || len(listings) == 0 || len(users) < 2 {
		var bookings []models.Booking
		db.Find(&bookings)
		return bookings
	}

	bookings := make([]models.Booking, 0, seedBookings)
	for i := 0; i < seedBookings; i++ {
		listing := listings[rand.Intn(len(listings))]

		guest := users[rand.Intn(len(users))]
		for guest.ID == listing.HostID {
			guest = users[rand.Intn(len(users))]
		}

		checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -30+rand.Intn(91))
		checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(14))

		total, err := pricing.ComputeTotalPrice(&listing, checkIn, checkOut)
		if err != nil {
			log.Printf("warning: failed to price seed booking: %v", err)
			continue
		}

		booking := models.Booking{
			ListingID:       listing.ID,
			GuestID:         guest.ID,
			ReferenceCode:   utils.NewReferenceCode(),
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  uint(1 + rand.Intn(int(listing.MaxGuests))),
			TotalPrice:      total,
			Status:          models.BookingStatuses[rand.Intn(len(models.BookingStatuses))],
			SpecialRequests: seedRequests[rand.Intn(len(seedRequests))],
		}
		if err := db.Create(&booking).Error; err != nil {
			log.Printf("warning: failed to seed booking: %v", err)
			continue
		}
		bookings = append(bookings, booking)
	}
	log.Printf("Seeded %d bookings", len(bookings))
	return bookings
}

func seedReviewRecords(db *gorm.DB, bookings []models.Booking) {
	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count > 0 {
		return
	}

	remaining := make([]models.Booking, len(bookings))
	copy(remaining, bookings)

	created := 0
	for i := 0; i < seedReviews && len(remaining) > 0; i++ {
		idx := rand.Intn(len(remaining))
		booking := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		// reviews only for completed stays
		if booking.Status != models.BookingStatusCompleted {
			continue
		}

		review := models.Review{
			ListingID:           booking.ListingID,
			GuestID:             booking.GuestID,
			BookingID:           booking.ID,
			Rating:              3 + rand.Intn(3), // mostly positive
			Comment:             seedComments[rand.Intn(len(seedComments))],
			CleanlinessRating:   intPtr(3 + rand.Intn(3)),
			CommunicationRating: intPtr(3 + rand.Intn(3)),
			CheckInRating:       intPtr(3 + rand.Intn(3)),
			AccuracyRating:      intPtr(3 + rand.Intn(3)),
			LocationRating:      intPtr(3 + rand.Intn(3)),
			ValueRating:         intPtr(3 + rand.Intn(3)),
		}
		if err := db.Create(&review).Error; err != nil {
			log.Printf("warning: failed to seed review: %v", err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d reviews", created)
}
