package middlewares

import (
	"log"
	"net/http"
	"os"
	"strings"
	"tabiway/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// AuthMiddleware consumes tokens issued by the external identity provider.
// The core only reads a user identifier and role string from the claims.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.Set("id", claims.Subject)
	ctx.Set("email", claims.Email)
	ctx.Set("role", claims.Role)
}

// OptionalAuth attaches identity claims when a valid bearer token is present
// but never rejects the request. Guest endpoints use it so bookings created
// by a signed-in customer keep a weak reference to that account.
func OptionalAuth(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		return
	}
	parts := strings.SplitN(bearerToken, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil || !tkn.Valid {
		log.Printf("ignoring invalid bearer token on guest route: %v\n", err)
		return
	}

	ctx.Set("id", claims.Subject)
	ctx.Set("email", claims.Email)
	ctx.Set("role", claims.Role)
}

// AdminOnly guards the dashboard routes.
func AdminOnly(ctx *gin.Context) {
	if ctx.GetString("role") != "admin" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}
}
