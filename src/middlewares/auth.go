package middlewares

import (
	"errors"
	"happyhomes/src/config"
	"happyhomes/src/db"
	"happyhomes/src/models"
	"happyhomes/src/types"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// AuthMiddleware verifies the bearer token and loads the caller into the context.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
		return
	}
	reqToken := strings.TrimSpace(strings.TrimPrefix(bearerToken, "Bearer "))
	if reqToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !tkn.Valid {
		if err != nil {
			log.Printf("token error: %s\n", err.Error())
		}
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	db := db.GetDb()
	var user models.User
	err = db.
		Model(&models.User{}).
		Where(&models.User{ID: uint(uid)}).
		Preload("Profile").
		First(&user).
		Error
	if err != nil || !user.IsActive {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("username", user.Username)
	ctx.Set("email", user.Email)
	ctx.Set("is_staff", user.IsStaff)
	ctx.Set("is_verified", user.IsVerified())
}

// StaffOnly rejects callers that are not administrators. It must run after AuthMiddleware.
func StaffOnly(ctx *gin.Context) {
	if !ctx.GetBool("is_staff") {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
		return
	}
	ctx.Next()
}
