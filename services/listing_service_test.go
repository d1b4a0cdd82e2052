package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/dto"
	"rental-backend/models"
)

func listingRequest() dto.CreateListingRequest {
	lat := decimal.RequireFromString("48.856613")
	lng := decimal.RequireFromString("2.352222")
	cleaning := decimal.RequireFromString("20.00")
	service := decimal.RequireFromString("10.00")
	return dto.CreateListingRequest{
		Title:             "Beautiful loft in Paris",
		Description:       "Stunning loft located in the heart of Paris.",
		Address:           "12 Oak Ave",
		City:              "Paris",
		State:             "Île-de-France",
		Country:           "France",
		PostalCode:        "75001",
		Latitude:          &lat,
		Longitude:         &lng,
		PropertyType:      models.PropertyTypeLoft,
		Bedrooms:          2,
		Bathrooms:         1,
		MaxGuests:         4,
		PricePerNight:     decimal.RequireFromString("100.00"),
		CleaningFee:       &cleaning,
		ServiceFee:        &service,
		Amenities:         []string{"WiFi", "Kitchen", "Balcony"},
		HouseRules:        []string{"No smoking", "No parties"},
		IsInstantBookable: true,
	}
}

// Round-trip: every write-shape field survives create-then-read, and a
// fresh listing reads back with zero aggregates.
func TestCreateListing_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")

	req := listingRequest()
	listing, err := svc.Create(host.ID, req)
	require.NoError(t, err)

	got, err := svc.GetByID(listing.ID)
	require.NoError(t, err)

	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Description, got.Description)
	assert.Equal(t, req.Address, got.Address)
	assert.Equal(t, req.City, got.City)
	assert.Equal(t, req.State, got.State)
	assert.Equal(t, req.Country, got.Country)
	assert.Equal(t, req.PostalCode, got.PostalCode)
	require.NotNil(t, got.Latitude)
	assert.True(t, got.Latitude.Equal(*req.Latitude))
	require.NotNil(t, got.Longitude)
	assert.True(t, got.Longitude.Equal(*req.Longitude))
	assert.Equal(t, req.PropertyType, got.PropertyType)
	assert.Equal(t, req.Bedrooms, got.Bedrooms)
	assert.Equal(t, req.Bathrooms, got.Bathrooms)
	assert.Equal(t, req.MaxGuests, got.MaxGuests)
	assert.True(t, got.PricePerNight.Equal(req.PricePerNight))
	assert.True(t, got.CleaningFee.Equal(*req.CleaningFee))
	assert.True(t, got.ServiceFee.Equal(*req.ServiceFee))
	assert.Equal(t, []string{"WiFi", "Kitchen", "Balcony"}, []string(got.Amenities))
	assert.Equal(t, []string{"No smoking", "No parties"}, []string(got.HouseRules))
	assert.Equal(t, req.IsInstantBookable, got.IsInstantBookable)

	// server-assigned
	assert.Equal(t, host.ID, got.HostID)
	assert.Equal(t, host.Username, got.Host.Username)
	assert.True(t, got.IsActive)
	assert.False(t, got.CreatedAt.IsZero())

	resp, err := svc.Response(got)
	require.NoError(t, err)
	assert.Equal(t, float64(0), resp.AverageRating)
	assert.Equal(t, int64(0), resp.TotalReviews)
	assert.Empty(t, resp.Reviews)
}

func TestCreateListing_FeesDefaultToZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")

	req := listingRequest()
	req.CleaningFee = nil
	req.ServiceFee = nil

	listing, err := svc.Create(host.ID, req)
	require.NoError(t, err)
	assert.True(t, listing.CleaningFee.IsZero())
	assert.True(t, listing.ServiceFee.IsZero())
}

func TestAverageRating(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")
	listing := createTestListing(t, db, host.ID)

	for i, rating := range []int{3, 4, 5} {
		guest := createTestUser(t, db, "guest"+string(rune('a'+i)))
		booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)
		createTestReview(t, db, booking, rating)
	}

	avg, err := svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	total, err := svc.TotalReviews(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestAverageRating_NoReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")
	listing := createTestListing(t, db, host.ID)

	avg, err := svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	total, err := svc.TotalReviews(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestListListings_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")

	toronto := createTestListing(t, db, host.ID)
	paris := createTestListing(t, db, host.ID)
	require.NoError(t, db.Model(&paris).Updates(map[string]interface{}{
		"city": "Paris", "country": "France", "is_active": false,
	}).Error)

	got, err := svc.List(ListingFilters{City: "Toronto"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, toronto.ID, got[0].ID)

	active := false
	got, err = svc.List(ListingFilters{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, paris.ID, got[0].ID)

	got, err = svc.List(ListingFilters{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateListing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")
	listing := createTestListing(t, db, host.ID)

	title := "Renovated cabin in Toronto"
	inactive := false
	updated, err := svc.Update(listing.ID, host.ID, dto.UpdateListingRequest{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.False(t, updated.IsActive)
	// untouched fields survive
	assert.Equal(t, listing.City, updated.City)
	assert.True(t, updated.PricePerNight.Equal(listing.PricePerNight))
}

func TestUpdateListing_ForbiddenForNonHost(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")
	other := createTestUser(t, db, "other")
	listing := createTestListing(t, db, host.ID)

	title := "hijacked"
	_, err := svc.Update(listing.ID, other.ID, dto.UpdateListingRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(listing.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteListing_Cascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)
	host := createTestUser(t, db, "host1")
	guest := createTestUser(t, db, "guest1")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, listing, guest.ID, models.BookingStatusCompleted)
	createTestReview(t, db, booking, 4)

	require.NoError(t, svc.Delete(listing.ID, host.ID))

	var listings, bookings, reviews int64
	db.Model(&models.Listing{}).Count(&listings)
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.Review{}).Count(&reviews)
	assert.Zero(t, listings)
	assert.Zero(t, bookings)
	assert.Zero(t, reviews)
}

func TestGetListing_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewListingService(db)

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, ErrListingNotFound)
}
