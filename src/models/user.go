package models

import "happyhomes/src/types"

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:150" json:"first_name,omitempty"`
	Email     string `gorm:"size:254" json:"email,omitempty"`
	IsStaff   bool   `json:"is_staff"`
	IsActive  bool   `json:"is_active"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`

	types.Timestamps
}

// DisplayName is the first name when set, otherwise the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// IsVerified reports whether an administrator approved the account.
func (u *User) IsVerified() bool {
	return u.Profile != nil && u.Profile.IsVerified
}

type UserProfile struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	UserID        uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	ContactNumber string `gorm:"size:20" json:"contact_number,omitempty"`
	IsVerified    bool   `json:"is_verified"`

	types.Timestamps
}

func (u *User) Response() types.UserResponse {
	return types.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		Email:      u.Email,
		IsVerified: u.IsVerified(),
	}
}
