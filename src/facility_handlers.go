package main

import (
	"happyhomes/src/common"
	"happyhomes/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func facilityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/facilities", func(ctx *gin.Context) {
			facilities, err := common.ListFacilities()
			if err != nil {
				respondError(ctx, err)
				return
			}
			data := make([]types.FacilityResponse, 0, len(facilities))
			for i := range facilities {
				data = append(data, facilities[i].Response())
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/facilities/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			facility, err := common.GetFacility(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": facility.Response()})
		})
	return g
}

func facilityAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/facilities", func(ctx *gin.Context) {
			var body types.CreateFacilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			facility, err := common.CreateFacility(types.FacilityKind(body.Kind))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": facility.Response()})
		})
	return g
}
