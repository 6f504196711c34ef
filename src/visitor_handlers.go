package main

import (
	"happyhomes/src/common"
	"happyhomes/src/models"
	"happyhomes/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func visitorList(visitors []models.Visitor) gin.H {
	data := make([]types.VisitorResponse, 0, len(visitors))
	for i := range visitors {
		data = append(data, visitors[i].Response())
	}
	return gin.H{"data": data, "count": len(data)}
}

// transitionHandler applies action to the visitor in the uri through the gate built for the caller.
func transitionHandler(action types.VisitorAction, gateFor func(ctx *gin.Context) common.VisitorGate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		visitor, err := common.TransitionVisitor(ctx, gateFor(ctx), params.ID, action, ctx.GetString("username"))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": visitor.Response()})
	}
}

func guestGate(ctx *gin.Context) common.VisitorGate {
	return common.GuestGate
}

func residentGate(ctx *gin.Context) common.VisitorGate {
	return common.ResidentGate(actorFrom(ctx))
}

func adminGate(ctx *gin.Context) common.VisitorGate {
	return common.AdminGate(actorFrom(ctx))
}

func guestVisitorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/visitors/guest-checkin", func(ctx *gin.Context) {
			var body types.GuestCheckinRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			visitor, err := common.SelfCheckin(ctx, &body)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message": "Check-in submitted. Waiting for resident approval.",
				"data":    visitor.Response(),
			})
		}).
		GET("/visitors/status", func(ctx *gin.Context) {
			var query types.VisitorStatusQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			visitors, err := common.VisitorStatus(query.Name, query.Gmail, query.Code)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, visitorList(visitors))
		}).
		PATCH("/visitors/:id/checkout", transitionHandler(types.VISITOR_CHECKOUT, guestGate)).
		PATCH("/visitors/:id/time-out", transitionHandler(types.VISITOR_CHECKOUT, guestGate)).
		PATCH("/visitors/:id/time-in", transitionHandler(types.VISITOR_TIME_IN, guestGate))
	return g
}

func visitorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/visitors", func(ctx *gin.Context) {
			var filters types.VisitorQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			visitors, err := common.ResidentVisitors(ctx.GetUint("id"), filters.Name, filters.Gmail)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, visitorList(visitors))
		}).
		GET("/visitors/active", func(ctx *gin.Context) {
			visitors, err := common.ActiveVisitors(ctx.GetUint("id"))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, visitorList(visitors))
		}).
		GET("/visitors/pending", func(ctx *gin.Context) {
			visitors, err := common.PendingVisitors(ctx.GetUint("id"))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, visitorList(visitors))
		}).
		POST("/visitors/checkin", func(ctx *gin.Context) {
			var body types.ResidentCheckinRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			visitor, err := common.ResidentCheckin(actorFrom(ctx), &body)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": visitor.Response()})
		}).
		PATCH("/visitors/:id/approve", transitionHandler(types.VISITOR_APPROVE, residentGate)).
		PATCH("/visitors/:id/decline", transitionHandler(types.VISITOR_DECLINE, residentGate))
	return g
}
