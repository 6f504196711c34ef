package scopes

import (
	"happyhomes/src/types"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "pending")
}

// WithFacility narrows to a facility when id is set.
func WithFacility(id *uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("facility_id = ?", *id)
	}
}

func OwnedBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func OrderBySchedule(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC").Order("start_time ASC").Order("id ASC")
}

func WithResident(residentID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("resident_id = ?", residentID)
	}
}

// OnSite matches visitors that were approved and have not checked out.
func OnSite(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", types.VISITOR_APPROVED).Where("time_out IS NULL")
}

// MatchingGuest narrows visitors by name and gmail when they are set.
func MatchingGuest(name, gmail string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name != "" {
			db = db.Where("name = ?", name)
		}
		if gmail != "" {
			db = db.Where("gmail = ?", gmail)
		}
		return db
	}
}
