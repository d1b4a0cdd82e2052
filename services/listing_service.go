package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rental-backend/dto"
	"rental-backend/models"
)

// ListingService owns listing persistence plus the derived rating
// aggregates, which are recomputed on every read and never stored.
type ListingService struct {
	DB *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{DB: db}
}

// ListingFilters are the optional axes for listing queries.
type ListingFilters struct {
	City         string
	Country      string
	PropertyType string
	IsActive     *bool
}

func preloadListing(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Host").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Guest")
}

// Create persists a new listing owned by hostID. Fees default to zero when
// the write shape leaves them unset.
func (s *ListingService) Create(hostID uint, req dto.CreateListingRequest) (*models.Listing, error) {
	listing := models.Listing{
		Title:             req.Title,
		Description:       req.Description,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		PropertyType:      req.PropertyType,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		MaxGuests:         req.MaxGuests,
		PricePerNight:     req.PricePerNight,
		CleaningFee:       decimal.Zero,
		ServiceFee:        decimal.Zero,
		Amenities:         datatypes.NewJSONSlice(req.Amenities),
		HouseRules:        datatypes.NewJSONSlice(req.HouseRules),
		HostID:            hostID,
		IsActive:          true,
		IsInstantBookable: req.IsInstantBookable,
	}
	if req.CleaningFee != nil {
		listing.CleaningFee = *req.CleaningFee
	}
	if req.ServiceFee != nil {
		listing.ServiceFee = *req.ServiceFee
	}
	if listing.Amenities == nil {
		listing.Amenities = datatypes.NewJSONSlice([]string{})
	}
	if listing.HouseRules == nil {
		listing.HouseRules = datatypes.NewJSONSlice([]string{})
	}

	if err := s.DB.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return s.GetByID(listing.ID)
}

// GetByID loads a listing with host and reviews expanded.
func (s *ListingService) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := preloadListing(s.DB).First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve listing: %w", err)
	}
	return &listing, nil
}

// List returns listings matching the filters, newest first.
func (s *ListingService) List(filters ListingFilters) ([]models.Listing, error) {
	q := preloadListing(s.DB)
	if filters.City != "" {
		q = q.Where("city = ?", filters.City)
	}
	if filters.Country != "" {
		q = q.Where("country = ?", filters.Country)
	}
	if filters.PropertyType != "" {
		q = q.Where("property_type = ?", filters.PropertyType)
	}
	if filters.IsActive != nil {
		q = q.Where("is_active = ?", *filters.IsActive)
	}

	var listings []models.Listing
	if err := q.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %w", err)
	}
	return listings, nil
}

// Update applies the non-nil fields of a partial update. Only the owning
// host may edit a listing.
func (s *ListingService) Update(id, hostID uint, req dto.UpdateListingRequest) (*models.Listing, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve listing: %w", err)
	}
	if listing.HostID != hostID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Address != nil {
		listing.Address = *req.Address
	}
	if req.City != nil {
		listing.City = *req.City
	}
	if req.State != nil {
		listing.State = *req.State
	}
	if req.Country != nil {
		listing.Country = *req.Country
	}
	if req.PostalCode != nil {
		listing.PostalCode = *req.PostalCode
	}
	if req.Latitude != nil {
		listing.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		listing.Longitude = req.Longitude
	}
	if req.PropertyType != nil {
		listing.PropertyType = *req.PropertyType
	}
	if req.Bedrooms != nil {
		listing.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		listing.Bathrooms = *req.Bathrooms
	}
	if req.MaxGuests != nil {
		listing.MaxGuests = *req.MaxGuests
	}
	if req.PricePerNight != nil {
		listing.PricePerNight = *req.PricePerNight
	}
	if req.CleaningFee != nil {
		listing.CleaningFee = *req.CleaningFee
	}
	if req.ServiceFee != nil {
		listing.ServiceFee = *req.ServiceFee
	}
	if req.Amenities != nil {
		listing.Amenities = datatypes.NewJSONSlice(*req.Amenities)
	}
	if req.HouseRules != nil {
		listing.HouseRules = datatypes.NewJSONSlice(*req.HouseRules)
	}
	if req.IsActive != nil {
		listing.IsActive = *req.IsActive
	}
	if req.IsInstantBookable != nil {
		listing.IsInstantBookable = *req.IsInstantBookable
	}

	if err := s.DB.Save(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return s.GetByID(listing.ID)
}

// Delete removes a listing and, in the same transaction, its bookings and
// reviews. Only the owning host may delete.
func (s *ListingService) Delete(id, hostID uint) error {
	var listing models.Listing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to retrieve listing: %w", err)
	}
	if listing.HostID != hostID {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing reviews: %w", err)
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing bookings: %w", err)
		}
		if err := tx.Delete(&models.Listing{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}
		return nil
	})
}

// AverageRating is the arithmetic mean of review ratings for a listing,
// 0 when there are none.
func (s *ListingService) AverageRating(listingID uint) (float64, error) {
	var avg float64
	err := s.DB.Model(&models.Review{}).
		Where("listing_id = ?", listingID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return avg, nil
}

// TotalReviews counts the reviews referencing a listing.
func (s *ListingService) TotalReviews(listingID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Review{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// Response builds the read shape for a listing, recomputing the rating
// aggregates.
func (s *ListingService) Response(listing *models.Listing) (dto.ListingResponse, error) {
	avg, err := s.AverageRating(listing.ID)
	if err != nil {
		return dto.ListingResponse{}, err
	}
	total, err := s.TotalReviews(listing.ID)
	if err != nil {
		return dto.ListingResponse{}, err
	}
	return dto.NewListingResponse(listing, avg, total), nil
}

// Responses maps a listing slice to read shapes.
func (s *ListingService) Responses(listings []models.Listing) ([]dto.ListingResponse, error) {
	out := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		resp, err := s.Response(&listings[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
