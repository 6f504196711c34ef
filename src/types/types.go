package types

import "time"

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

type FacilityKind string

const (
	FACILITY_COURT FacilityKind = "Court"
	FACILITY_POOL  FacilityKind = "Pool"
)

var FacilityLabels = map[FacilityKind]string{
	FACILITY_COURT: "Basketball Court",
	FACILITY_POOL:  "Swimming Pool",
}

type BookingStatus string

const (
	BOOKING_PENDING  BookingStatus = "pending"
	BOOKING_APPROVED BookingStatus = "approved"
	BOOKING_REJECTED BookingStatus = "rejected"
)

type VisitorStatus string

const (
	VISITOR_PENDING  VisitorStatus = "pending"
	VISITOR_APPROVED VisitorStatus = "approved"
	VISITOR_DECLINED VisitorStatus = "declined"
)

// VisitorAction names a state change applied to a visitor record.
type VisitorAction string

const (
	VISITOR_APPROVE       VisitorAction = "approve"
	VISITOR_DECLINE       VisitorAction = "decline"
	VISITOR_CHECKOUT      VisitorAction = "checkout"
	VISITOR_TIME_IN       VisitorAction = "time-in"
	VISITOR_FORCE_TIMEOUT VisitorAction = "timeout"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type FacilityQueryFilters struct {
	FacilityID *uint `form:"facility_id"`
}

type CreateFacilityRequestBody struct {
	Kind string `json:"kind" binding:"required,facilitykind"`
}

type CreateSlotRequestBody struct {
	FacilityID uint   `json:"facility_id" binding:"required"`
	Date       string `json:"date" binding:"required,isodate"`
	StartTime  string `json:"start_time" binding:"required,clocktime"`
	EndTime    string `json:"end_time" binding:"required,clocktime"`
}

type UpdateSlotRequestBody struct {
	FacilityID *uint   `json:"facility_id"`
	Date       *string `json:"date" binding:"omitempty,isodate"`
	StartTime  *string `json:"start_time" binding:"omitempty,clocktime"`
	EndTime    *string `json:"end_time" binding:"omitempty,clocktime"`
}

type CreateBookingRequestBody struct {
	FacilityID uint   `json:"facility_id" binding:"required"`
	Date       string `json:"date" binding:"required,isodate"`
	StartTime  string `json:"start_time" binding:"required,clocktime"`
	EndTime    string `json:"end_time" binding:"required,clocktime"`
}

type UpdateBookingRequestBody struct {
	Status    *string `json:"status" binding:"omitempty,bookingstatus"`
	Date      *string `json:"date" binding:"omitempty,isodate"`
	StartTime *string `json:"start_time" binding:"omitempty,clocktime"`
	EndTime   *string `json:"end_time" binding:"omitempty,clocktime"`
}

type GuestCheckinRequestBody struct {
	Name          string  `json:"name"`
	Gmail         string  `json:"gmail"`
	ContactNumber *string `json:"contact_number"`
	Code          string  `json:"code"`
	Reason        *string `json:"reason"`
}

type ResidentCheckinRequestBody struct {
	Name          string  `json:"name" binding:"required"`
	Gmail         *string `json:"gmail" binding:"omitempty,email"`
	ContactNumber *string `json:"contact_number"`
	Reason        *string `json:"reason"`
}

type VisitorQueryFilters struct {
	Name  string `form:"name"`
	Gmail string `form:"gmail"`
}

type VisitorStatusQuery struct {
	Name  string `form:"name" binding:"required"`
	Gmail string `form:"gmail" binding:"required"`
	Code  string `form:"code" binding:"required,accesscode"`
}

type SendVerificationCodeRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyEmailCodeRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type FacilityResponse struct {
	ID    uint         `json:"id"`
	Kind  FacilityKind `json:"kind"`
	Label string       `json:"label"`
}

type SlotResponse struct {
	ID         uint      `json:"id"`
	FacilityID uint      `json:"facility_id"`
	Facility   string    `json:"facility"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingResponse struct {
	ID         uint          `json:"id"`
	UserID     uint          `json:"user_id"`
	Username   string        `json:"username,omitempty"`
	FacilityID uint          `json:"facility_id"`
	Facility   string        `json:"facility"`
	Date       string        `json:"date"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

type AccessCodeResponse struct {
	ID       uint    `json:"id"`
	Code     *string `json:"code"`
	Username string  `json:"username"`
}

type VisitorResponse struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Gmail         *string       `json:"gmail"`
	ContactNumber *string       `json:"contact_number"`
	Reason        *string       `json:"reason"`
	CodeEntered   *string       `json:"code_entered"`
	ResidentID    *uint         `json:"resident"`
	Status        VisitorStatus `json:"status"`
	TimeIn        *time.Time    `json:"time_in"`
	TimeOut       *time.Time    `json:"time_out"`
}

type UserResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name,omitempty"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}
