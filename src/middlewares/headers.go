package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("Referrer-Policy", "same-origin")
	ctx.Next()
}

// RequestID tags each request, keeping an incoming X-Request-ID when present.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Header("X-Request-ID", id)
	ctx.Next()
}
