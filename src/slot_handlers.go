package main

import (
	"happyhomes/src/common"
	"happyhomes/src/middlewares"
	"happyhomes/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func slotHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	updateSlot := func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var body types.UpdateSlotRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slot, err := common.UpdateSlot(params.ID, &body)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": slot.Response()})
	}

	g.
		GET("/available-slots", func(ctx *gin.Context) {
			var filters types.FacilityQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			slots, err := common.ListSlots(filters.FacilityID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			data := make([]types.SlotResponse, 0, len(slots))
			for i := range slots {
				data = append(data, slots[i].Response())
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/available-slots/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			slot, err := common.GetSlot(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": slot.Response()})
		}).
		POST("/available-slots", middlewares.StaffOnly, func(ctx *gin.Context) {
			var body types.CreateSlotRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			w, err := common.ParseWindow(body.FacilityID, body.Date, body.StartTime, body.EndTime)
			if err != nil {
				respondError(ctx, err)
				return
			}
			slot, err := common.CreateSlot(w)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": slot.Response()})
		}).
		PUT("/available-slots/:id", middlewares.StaffOnly, updateSlot).
		PATCH("/available-slots/:id", middlewares.StaffOnly, updateSlot).
		DELETE("/available-slots/:id", middlewares.StaffOnly, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.DeleteSlot(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
