package models

import (
	"happyhomes/src/types"
	"happyhomes/src/utils"

	"gorm.io/datatypes"
)

type Booking struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	UserID     uint                `gorm:"not null;index" json:"user_id"`
	FacilityID uint                `gorm:"not null;index" json:"facility_id"`
	Date       datatypes.Date      `gorm:"not null" json:"date"`
	StartTime  datatypes.Time      `gorm:"not null" json:"start_time"`
	EndTime    datatypes.Time      `gorm:"not null" json:"end_time"`
	Status     types.BookingStatus `gorm:"size:10;default:'pending'" json:"status"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Facility *Facility `gorm:"constraint:OnDelete:CASCADE" json:"facility,omitempty"`

	types.Timestamps
}

func (b *Booking) Response() types.BookingResponse {
	res := types.BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		FacilityID: b.FacilityID,
		Date:       utils.FormatDate(b.Date),
		StartTime:  utils.FormatClock(b.StartTime),
		EndTime:    utils.FormatClock(b.EndTime),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
	if b.User != nil {
		res.Username = b.User.Username
	}
	if b.Facility != nil {
		res.Facility = b.Facility.Label()
	}
	return res
}
