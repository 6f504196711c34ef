package common

import (
	"context"
	"happyhomes/src/db"
	"happyhomes/src/lib/mailer"
	"happyhomes/src/models"
	"happyhomes/src/models/scopes"
	"happyhomes/src/types"
	"happyhomes/src/utils"
	"log"

	"gorm.io/gorm"
)

// CreateBooking records a pending reservation for a verified resident.
// Overlapping bookings are accepted.
func CreateBooking(actor Actor, w *Window) (*models.Booking, error) {
	db := db.GetDb()
	booking := models.Booking{
		UserID:     actor.UserID,
		FacilityID: w.FacilityID,
		Date:       w.Date,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
		Status:     types.BOOKING_PENDING,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Profile").Where(&models.User{ID: actor.UserID}).First(&user).Error; err != nil {
			return notFound(err, "User")
		}
		if !user.IsVerified() {
			return ErrNotVerified
		}
		facility, err := findFacility(tx, w.FacilityID)
		if err != nil {
			return err
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		booking.User = &user
		booking.Facility = facility
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Booking %d created by user %d\n", booking.ID, actor.UserID)
	return &booking, nil
}

// ListBookings returns every booking for staff and the caller's own otherwise.
func ListBookings(actor Actor, facilityID *uint) ([]models.Booking, error) {
	db := db.GetDb()
	q := db.
		Model(&models.Booking{}).
		Scopes(scopes.WithFacility(facilityID), scopes.OrderBySchedule)
	if !actor.IsStaff {
		q = q.Scopes(scopes.OwnedBy(actor.UserID))
	}
	var bookings []models.Booking
	err := q.
		Preload("User").
		Preload("Facility").
		Find(&bookings).
		Error
	return bookings, err
}

func GetBooking(actor Actor, id uint) (*models.Booking, error) {
	return findBooking(db.GetDb(), actor, id)
}

func findBooking(tx *gorm.DB, actor Actor, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := tx.
		Scopes(scopes.WithID(id)).
		Preload("User").
		Preload("Facility").
		First(&booking).
		Error
	if err != nil {
		return nil, notFound(err, "Booking")
	}
	if !actor.CanAccess(booking.UserID) {
		return nil, ErrForbidden
	}
	return &booking, nil
}

// UpdateBooking applies a partial update. A status change notifies the owner after commit.
func UpdateBooking(ctx context.Context, actor Actor, id uint, body *types.UpdateBookingRequestBody) (*models.Booking, error) {
	db := db.GetDb()
	var booking *models.Booking
	var previous types.BookingStatus
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = findBooking(tx, actor, id)
		if err != nil {
			return err
		}
		previous = booking.Status
		if body.Status != nil {
			status := types.BookingStatus(*body.Status)
			if !IsBookingStatus(status) {
				return Errorf(ErrInvalidInput, "invalid status %q", *body.Status)
			}
			booking.Status = status
		}
		if body.Date != nil {
			if booking.Date, err = utils.ParseDate(*body.Date); err != nil {
				return Errorf(ErrInvalidInput, "invalid date %q: expected YYYY-MM-DD", *body.Date)
			}
		}
		if body.StartTime != nil {
			if booking.StartTime, err = utils.ParseClock(*body.StartTime); err != nil {
				return Errorf(ErrInvalidInput, "invalid start_time %q: expected HH:MM", *body.StartTime)
			}
		}
		if body.EndTime != nil {
			if booking.EndTime, err = utils.ParseClock(*body.EndTime); err != nil {
				return Errorf(ErrInvalidInput, "invalid end_time %q: expected HH:MM", *body.EndTime)
			}
		}
		if !utils.ClockBefore(booking.StartTime, booking.EndTime) {
			return Errorf(ErrInvalidInput, "end_time must be after start_time")
		}
		return tx.
			Model(&models.Booking{}).
			Scopes(scopes.WithID(booking.ID)).
			Updates(map[string]any{
				"status":     booking.Status,
				"date":       booking.Date,
				"start_time": booking.StartTime,
				"end_time":   booking.EndTime,
			}).
			Error
	})
	if err != nil {
		return nil, err
	}
	if booking.Status != previous {
		log.Printf("Booking %d status changed: %s -> %s\n", booking.ID, previous, booking.Status)
		mailer.Dispatch(ctx, BookingStatusMessage(booking, previous))
	}
	return booking, nil
}

func DeleteBooking(actor Actor, id uint) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(tx, actor, id)
		if err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, booking.ID).Error
	})
	if err != nil {
		return err
	}
	log.Printf("Booking %d deleted by user %d\n", id, actor.UserID)
	return nil
}

func IsBookingStatus(s types.BookingStatus) bool {
	switch s {
	case types.BOOKING_PENDING, types.BOOKING_APPROVED, types.BOOKING_REJECTED:
		return true
	}
	return false
}
