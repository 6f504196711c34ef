package models

import "happyhomes/src/types"

// ResidentAccessCode holds the code a resident hands out to visitors.
// Code stays nil until the first regeneration. Codes are not unique across residents.
type ResidentAccessCode struct {
	ID     uint    `gorm:"primarykey" json:"id"`
	UserID uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Code   *string `gorm:"size:6;index" json:"code"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`

	types.Timestamps
}

func (r *ResidentAccessCode) Response() types.AccessCodeResponse {
	res := types.AccessCodeResponse{
		ID:   r.ID,
		Code: r.Code,
	}
	if r.User != nil {
		res.Username = r.User.Username
	}
	return res
}
