package main

import (
	"happyhomes/src/common"
	"net/http"

	"github.com/gin-gonic/gin"
)

func accessCodeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/resident/access-code", func(ctx *gin.Context) {
			rec, err := common.GetOrCreateAccessCode(ctx.GetUint("id"))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rec.Response()})
		}).
		POST("/resident/access-code", func(ctx *gin.Context) {
			rec, err := common.RegenerateAccessCode(ctx.GetUint("id"))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rec.Response()})
		}).
		GET("/resident/access-code/qr", func(ctx *gin.Context) {
			img, err := common.AccessCodeQR(ctx.GetUint("id"))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Data(http.StatusOK, http.DetectContentType(img), img)
		})
	return g
}
