package models

import (
	"happyhomes/src/types"
	"happyhomes/src/utils"

	"gorm.io/datatypes"
)

// AvailableSlot is an administrator-declared window. Bookings do not reference it.
type AvailableSlot struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	FacilityID uint           `gorm:"not null;uniqueIndex:idx_slot_window" json:"facility_id"`
	Date       datatypes.Date `gorm:"not null;uniqueIndex:idx_slot_window" json:"date"`
	StartTime  datatypes.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"start_time"`
	EndTime    datatypes.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"end_time"`

	Facility *Facility `gorm:"constraint:OnDelete:CASCADE" json:"facility,omitempty"`

	types.Timestamps
}

func (s *AvailableSlot) Response() types.SlotResponse {
	res := types.SlotResponse{
		ID:         s.ID,
		FacilityID: s.FacilityID,
		Date:       utils.FormatDate(s.Date),
		StartTime:  utils.FormatClock(s.StartTime),
		EndTime:    utils.FormatClock(s.EndTime),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Facility != nil {
		res.Facility = s.Facility.Label()
	}
	return res
}
