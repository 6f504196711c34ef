package common

import (
	"happyhomes/src/db"
	"happyhomes/src/models"
	"happyhomes/src/types"
	"log"

	"gorm.io/gorm"
)

func ListFacilities() ([]models.Facility, error) {
	db := db.GetDb()
	var facilities []models.Facility
	err := db.
		Model(&models.Facility{}).
		Order("id ASC").
		Find(&facilities).
		Error
	return facilities, err
}

func GetFacility(id uint) (*models.Facility, error) {
	return findFacility(db.GetDb(), id)
}

func findFacility(tx *gorm.DB, id uint) (*models.Facility, error) {
	var facility models.Facility
	if err := tx.Where(&models.Facility{ID: id}).First(&facility).Error; err != nil {
		return nil, notFound(err, "Facility")
	}
	return &facility, nil
}

func CreateFacility(kind types.FacilityKind) (*models.Facility, error) {
	if _, ok := types.FacilityLabels[kind]; !ok {
		return nil, Errorf(ErrInvalidInput, "unknown facility kind: %q", kind)
	}
	db := db.GetDb()
	facility := models.Facility{Kind: kind}
	if err := db.Create(&facility).Error; err != nil {
		return nil, err
	}
	return &facility, nil
}

// SeedFacilities makes sure every known facility kind has a row.
func SeedFacilities() error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		for _, kind := range []types.FacilityKind{types.FACILITY_COURT, types.FACILITY_POOL} {
			var count int64
			if err := tx.Model(&models.Facility{}).Where(&models.Facility{Kind: kind}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&models.Facility{Kind: kind}).Error; err != nil {
				return err
			}
			log.Printf("Created default facility: %s\n", kind)
		}
		return nil
	})
}
