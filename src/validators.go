package main

import (
	"happyhomes/src/common"
	"happyhomes/src/types"
	"happyhomes/src/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var isoDate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := utils.ParseDate(date)
	return err == nil
}

var clockTime validator.Func = func(fl validator.FieldLevel) bool {
	clock, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := utils.ParseClock(clock)
	return err == nil
}

var facilityKind validator.Func = func(fl validator.FieldLevel) bool {
	kind, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, known := types.FacilityLabels[types.FacilityKind(kind)]
	return known
}

var bookingStatus validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	return ok && common.IsBookingStatus(types.BookingStatus(status))
}

var accessCode validator.Func = func(fl validator.FieldLevel) bool {
	code, ok := fl.Field().Interface().(string)
	return ok && utils.IsDigits(code, 6)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("isodate", isoDate)
		v.RegisterValidation("clocktime", clockTime)
		v.RegisterValidation("facilitykind", facilityKind)
		v.RegisterValidation("bookingstatus", bookingStatus)
		v.RegisterValidation("accesscode", accessCode)
	}
}
