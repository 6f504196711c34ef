package main

import (
	"happyhomes/src/controllers"

	"github.com/gin-gonic/gin"
)

func verificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	auth := g.Group("/auth/verification")
	auth.
		POST("/send", func(ctx *gin.Context) {
			status, err := controllers.AuthSendVerificationCode(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"message": "Verification code sent"})
		}).
		POST("/verify", func(ctx *gin.Context) {
			verified, status, err := controllers.AuthVerifyEmailCode(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"verified": verified})
		})
	return g
}
