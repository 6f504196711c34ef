package models

import (
	"happyhomes/src/types"
	"time"
)

type Visitor struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	Name          string              `gorm:"size:255;not null" json:"name"`
	Gmail         *string             `gorm:"size:254" json:"gmail"`
	ContactNumber *string             `gorm:"size:20" json:"contact_number"`
	CodeEntered   *string             `gorm:"size:6" json:"code_entered"`
	ResidentID    *uint               `gorm:"index" json:"resident"`
	Reason        *string             `gorm:"type:text" json:"reason"`
	Status        types.VisitorStatus `gorm:"size:10;default:'pending'" json:"status"`
	TimeIn        *time.Time          `json:"time_in"`
	TimeOut       *time.Time          `json:"time_out"`

	Resident *ResidentAccessCode `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	types.Timestamps
}

func (v *Visitor) Response() types.VisitorResponse {
	return types.VisitorResponse{
		ID:            v.ID,
		Name:          v.Name,
		Gmail:         v.Gmail,
		ContactNumber: v.ContactNumber,
		Reason:        v.Reason,
		CodeEntered:   v.CodeEntered,
		ResidentID:    v.ResidentID,
		Status:        v.Status,
		TimeIn:        v.TimeIn,
		TimeOut:       v.TimeOut,
	}
}
