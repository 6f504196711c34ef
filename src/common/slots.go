package common

import (
	"errors"
	"happyhomes/src/db"
	"happyhomes/src/models"
	"happyhomes/src/models/scopes"
	"happyhomes/src/types"
	"happyhomes/src/utils"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Window is a parsed facility/date/time tuple.
type Window struct {
	FacilityID uint
	Date       datatypes.Date
	StartTime  datatypes.Time
	EndTime    datatypes.Time
}

func ParseWindow(facilityID uint, date, start, end string) (*Window, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return nil, Errorf(ErrInvalidInput, "invalid date %q: expected YYYY-MM-DD", date)
	}
	st, err := utils.ParseClock(start)
	if err != nil {
		return nil, Errorf(ErrInvalidInput, "invalid start_time %q: expected HH:MM", start)
	}
	et, err := utils.ParseClock(end)
	if err != nil {
		return nil, Errorf(ErrInvalidInput, "invalid end_time %q: expected HH:MM", end)
	}
	w := &Window{FacilityID: facilityID, Date: d, StartTime: st, EndTime: et}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) validate() error {
	if !utils.ClockBefore(w.StartTime, w.EndTime) {
		return Errorf(ErrInvalidInput, "end_time must be after start_time")
	}
	return nil
}

func CreateSlot(w *Window) (*models.AvailableSlot, error) {
	db := db.GetDb()
	slot := models.AvailableSlot{
		FacilityID: w.FacilityID,
		Date:       w.Date,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		facility, err := findFacility(tx, w.FacilityID)
		if err != nil {
			return err
		}
		if err := ensureSlotIsFree(tx, w, 0); err != nil {
			return err
		}
		if err := tx.Create(&slot).Error; err != nil {
			return duplicateSlot(err)
		}
		slot.Facility = facility
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Created slot %d for facility %d on %s\n", slot.ID, slot.FacilityID, utils.FormatDate(slot.Date))
	return &slot, nil
}

func ListSlots(facilityID *uint) ([]models.AvailableSlot, error) {
	db := db.GetDb()
	var slots []models.AvailableSlot
	err := db.
		Model(&models.AvailableSlot{}).
		Scopes(scopes.WithFacility(facilityID), scopes.OrderBySchedule).
		Preload("Facility").
		Find(&slots).
		Error
	return slots, err
}

func GetSlot(id uint) (*models.AvailableSlot, error) {
	return findSlot(db.GetDb(), id)
}

func findSlot(tx *gorm.DB, id uint) (*models.AvailableSlot, error) {
	var slot models.AvailableSlot
	err := tx.
		Scopes(scopes.WithID(id)).
		Preload("Facility").
		First(&slot).
		Error
	if err != nil {
		return nil, notFound(err, "Available slot")
	}
	return &slot, nil
}

// UpdateSlot applies the set fields of body. The duplicate check runs on the resulting tuple.
func UpdateSlot(id uint, body *types.UpdateSlotRequestBody) (*models.AvailableSlot, error) {
	db := db.GetDb()
	var slot *models.AvailableSlot
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		slot, err = findSlot(tx, id)
		if err != nil {
			return err
		}
		w := &Window{FacilityID: slot.FacilityID, Date: slot.Date, StartTime: slot.StartTime, EndTime: slot.EndTime}
		if body.FacilityID != nil {
			w.FacilityID = *body.FacilityID
		}
		if body.Date != nil {
			if w.Date, err = utils.ParseDate(*body.Date); err != nil {
				return Errorf(ErrInvalidInput, "invalid date %q: expected YYYY-MM-DD", *body.Date)
			}
		}
		if body.StartTime != nil {
			if w.StartTime, err = utils.ParseClock(*body.StartTime); err != nil {
				return Errorf(ErrInvalidInput, "invalid start_time %q: expected HH:MM", *body.StartTime)
			}
		}
		if body.EndTime != nil {
			if w.EndTime, err = utils.ParseClock(*body.EndTime); err != nil {
				return Errorf(ErrInvalidInput, "invalid end_time %q: expected HH:MM", *body.EndTime)
			}
		}
		if err := w.validate(); err != nil {
			return err
		}
		facility, err := findFacility(tx, w.FacilityID)
		if err != nil {
			return err
		}
		if err := ensureSlotIsFree(tx, w, slot.ID); err != nil {
			return err
		}
		slot.FacilityID = w.FacilityID
		slot.Date = w.Date
		slot.StartTime = w.StartTime
		slot.EndTime = w.EndTime
		slot.Facility = nil
		if err := tx.Save(slot).Error; err != nil {
			return duplicateSlot(err)
		}
		slot.Facility = facility
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func DeleteSlot(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := findSlot(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.AvailableSlot{}, id).Error
	})
}

func ensureSlotIsFree(tx *gorm.DB, w *Window, exceptID uint) error {
	var count int64
	q := tx.
		Model(&models.AvailableSlot{}).
		Where("facility_id = ? AND date = ? AND start_time = ? AND end_time = ?", w.FacilityID, w.Date, w.StartTime, w.EndTime)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSlot
	}
	return nil
}

func duplicateSlot(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlot
	}
	return err
}
