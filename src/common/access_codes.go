package common

import (
	"errors"
	"happyhomes/src/db"
	"happyhomes/src/lib"
	"happyhomes/src/models"
	"happyhomes/src/utils"
	"log"

	"gorm.io/gorm"
)

const accessCodeLength = 6

func GetOrCreateAccessCode(userID uint) (*models.ResidentAccessCode, error) {
	db := db.GetDb()
	var rec *models.ResidentAccessCode
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		rec, err = getOrCreateAccessCode(tx, userID)
		return err
	})
	return rec, err
}

func getOrCreateAccessCode(tx *gorm.DB, userID uint) (*models.ResidentAccessCode, error) {
	var user models.User
	if err := tx.Where(&models.User{ID: userID}).First(&user).Error; err != nil {
		return nil, notFound(err, "User")
	}
	var rec models.ResidentAccessCode
	err := tx.Where(&models.ResidentAccessCode{UserID: userID}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.ResidentAccessCode{UserID: userID}
		err = tx.Create(&rec).Error
	}
	if err != nil {
		return nil, err
	}
	rec.User = &user
	return &rec, nil
}

// RegenerateAccessCode draws a fresh code for the resident, replacing the old one.
// Codes may collide with other residents' codes.
func RegenerateAccessCode(userID uint) (*models.ResidentAccessCode, error) {
	code, err := utils.RandomDigits(accessCodeLength)
	if err != nil {
		return nil, err
	}
	db := db.GetDb()
	var rec *models.ResidentAccessCode
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		rec, err = getOrCreateAccessCode(tx, userID)
		if err != nil {
			return err
		}
		rec.Code = &code
		return tx.
			Model(&models.ResidentAccessCode{}).
			Where("id = ?", rec.ID).
			Update("code", code).
			Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Access code regenerated for user %d\n", userID)
	return rec, nil
}

// FindAccessCode returns the oldest record holding code.
// A code that is not 6 digits is rejected as invalid input before any lookup.
func FindAccessCode(code string) (*models.ResidentAccessCode, error) {
	return findAccessCode(db.GetDb(), code)
}

func findAccessCode(tx *gorm.DB, code string) (*models.ResidentAccessCode, error) {
	if !utils.IsDigits(code, accessCodeLength) {
		return nil, Errorf(ErrInvalidInput, "Access code must be %d digits", accessCodeLength)
	}
	var rec models.ResidentAccessCode
	err := tx.
		Where("code = ?", code).
		Preload("User").
		Order("id ASC").
		First(&rec).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AccessCodeQR renders the resident's current code as a QR image.
func AccessCodeQR(userID uint) ([]byte, error) {
	rec, err := GetOrCreateAccessCode(userID)
	if err != nil {
		return nil, err
	}
	if rec.Code == nil {
		return nil, Errorf(ErrNotFound, "No access code generated yet")
	}
	return lib.RenderQRCode(*rec.Code)
}
