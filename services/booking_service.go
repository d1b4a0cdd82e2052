// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rental-backend/dto"
	"rental-backend/models"
	"rental-backend/pricing"
	"rental-backend/utils"
)

// BookingService owns booking persistence. The pricing rules stay pure in
// the pricing package; this layer calls them inside the write transaction
// so the listing read, the price computation and the booking write commit
// together.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func preloadBooking(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Guest").
		Preload("Listing.Host").
		Preload("Listing.Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Listing.Reviews.Guest")
}

func parseBookingDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, &pricing.ValidationError{
			Message: fmt.Sprintf("invalid %s, expected YYYY-MM-DD", field),
		}
	}
	return t, nil
}

// applyTotalPrice computes and sets the total whenever the stored price is
// absent. It must run on every save, not only on first creation.
func applyTotalPrice(booking *models.Booking, listing *models.Listing) error {
	if !booking.TotalPrice.IsZero() {
		return nil
	}
	total, err := pricing.ComputeTotalPrice(listing, booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return err
	}
	booking.TotalPrice = total
	return nil
}

// hasOverlap reports whether the listing already has a pending or confirmed
// booking intersecting [checkIn, checkOut). excludeID skips the booking
// being edited.
func hasOverlap(tx *gorm.DB, listingID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("listing_id = ?", listingID).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}
	return count > 0, nil
}

// Create validates and persists a booking for guestID. The whole flow runs
// in one transaction: listing read, rule checks, overlap check, price
// computation, write.
func (s *BookingService) Create(guestID uint, req dto.CreateBookingRequest) (*models.Booking, error) {
	checkIn, err := parseBookingDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseBookingDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, req.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return fmt.Errorf("failed to retrieve listing: %w", err)
		}

		if err := pricing.ValidateBookingRequest(&listing, checkIn, checkOut, req.NumberOfGuests); err != nil {
			return err
		}

		overlap, err := hasOverlap(tx, listing.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if overlap {
			return &pricing.ValidationError{Message: "requested dates overlap an existing booking"}
		}

		booking = models.Booking{
			ListingID:       listing.ID,
			GuestID:         guestID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  req.NumberOfGuests,
			Status:          models.BookingStatusPending,
			SpecialRequests: req.SpecialRequests,
		}
		if err := applyTotalPrice(&booking, &listing); err != nil {
			return err
		}

		// retry on reference code collision
		var createErr error
		for attempt := 0; attempt < 5; attempt++ {
			// clear any id assigned by a failed insert
			booking.ID = 0
			booking.ReferenceCode = utils.NewReferenceCode()
			createErr = tx.Create(&booking).Error
			if createErr == nil {
				return nil
			}
			if isDuplicateErr(createErr) {
				log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		return fmt.Errorf("failed to create booking after retries: %w", createErr)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(booking.ID)
}

// GetByID loads a booking with guest and listing expanded.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := preloadBooking(s.DB).First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// ListForGuest returns the acting user's bookings, newest first.
func (s *BookingService) ListForGuest(guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := preloadBooking(s.DB).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// Update edits a booking's dates, guest count or special requests. Only the
// booking's guest may edit. The total fixed at creation is kept unless the
// update explicitly asks for a recalculation, which clears it so the save
// path recomputes.
func (s *BookingService) Update(id, guestID uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to retrieve booking: %w", err)
		}
		if booking.GuestID != guestID {
			return ErrForbidden
		}

		var listing models.Listing
		if err := tx.First(&listing, booking.ListingID).Error; err != nil {
			return fmt.Errorf("failed to retrieve listing: %w", err)
		}

		if req.CheckInDate != nil {
			ci, err := parseBookingDate("check_in_date", *req.CheckInDate)
			if err != nil {
				return err
			}
			booking.CheckInDate = ci
		}
		if req.CheckOutDate != nil {
			co, err := parseBookingDate("check_out_date", *req.CheckOutDate)
			if err != nil {
				return err
			}
			booking.CheckOutDate = co
		}
		if req.NumberOfGuests != nil {
			booking.NumberOfGuests = *req.NumberOfGuests
		}
		if req.SpecialRequests != nil {
			booking.SpecialRequests = *req.SpecialRequests
		}
		if req.Recalculate {
			booking.TotalPrice = decimal.Zero
		}

		if err := pricing.ValidateBookingRequest(&listing, booking.CheckInDate, booking.CheckOutDate, booking.NumberOfGuests); err != nil {
			return err
		}

		overlap, err := hasOverlap(tx, listing.ID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
		if err != nil {
			return err
		}
		if overlap {
			return &pricing.ValidationError{Message: "requested dates overlap an existing booking"}
		}

		if err := applyTotalPrice(&booking, &listing); err != nil {
			return err
		}
		if err := tx.Save(&booking).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(id)
}

// UpdateStatus moves a booking through its lifecycle. The booking's guest
// and the listing's host may both transition it.
func (s *BookingService) UpdateStatus(id, actorID uint, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, &pricing.ValidationError{Message: fmt.Sprintf("unknown booking status %q", status)}
	}

	var booking models.Booking
	if err := s.DB.Preload("Listing").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	if booking.GuestID != actorID && booking.Listing.HostID != actorID {
		return nil, ErrForbidden
	}

	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a booking and its review, if any. Only the booking's
// guest may delete.
func (s *BookingService) Delete(id, guestID uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to retrieve booking: %w", err)
	}
	if booking.GuestID != guestID {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking review: %w", err)
		}
		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}
