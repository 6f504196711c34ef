package main

import (
	"happyhomes/src/common"
	"happyhomes/src/controllers"
	"happyhomes/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("/admin")
	admin.
		GET("/visitors", func(ctx *gin.Context) {
			visitors, err := common.ListAllVisitors()
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, visitorList(visitors))
		}).
		PATCH("/visitors/:id/approve", transitionHandler(types.VISITOR_APPROVE, adminGate)).
		PATCH("/visitors/:id/decline", transitionHandler(types.VISITOR_DECLINE, adminGate)).
		PATCH("/visitors/:id/timeout", transitionHandler(types.VISITOR_FORCE_TIMEOUT, adminGate)).
		GET("/verifications/pending", func(ctx *gin.Context) {
			users, status, err := controllers.AccountsPendingVerification(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": users, "count": len(users)})
		}).
		PUT("/users/:id/verify", func(ctx *gin.Context) {
			user, status, err := controllers.AccountsSetVerified(ctx, true)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": user, "message": "User verified successfully"})
		}).
		PUT("/users/:id/reject", func(ctx *gin.Context) {
			user, status, err := controllers.AccountsSetVerified(ctx, false)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": user, "message": "User verification rejected"})
		})
	return g
}
