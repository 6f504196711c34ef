package controllers

import (
	"happyhomes/src/common"
	"happyhomes/src/lib"
	"happyhomes/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func AuthSendVerificationCode(ctx *gin.Context) (status int, err error) {
	var body types.SendVerificationCodeRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, err
	}
	if err := common.SendVerificationCode(ctx, lib.GetCache(), body.Email); err != nil {
		log.Printf("Error sending verification code: %s\n", err.Error())
		return http.StatusServiceUnavailable, err
	}
	return http.StatusOK, nil
}

func AuthVerifyEmailCode(ctx *gin.Context) (verified bool, status int, err error) {
	var body types.VerifyEmailCodeRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return false, http.StatusBadRequest, err
	}
	verified, err = common.VerifyEmailCode(ctx, lib.GetCache(), body.Email, body.Code)
	if err != nil {
		log.Printf("Error verifying email code: %s\n", err.Error())
		return false, http.StatusServiceUnavailable, err
	}
	if !verified {
		return false, http.StatusBadRequest, nil
	}
	return true, http.StatusOK, nil
}
