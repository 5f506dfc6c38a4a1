package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripify/pkg/utils"
)

// AccountLookup confirms the identity encoded in a token still exists.
type AccountLookup interface {
	ExistsByID(ctx context.Context, userId string) (bool, error)
}

// JWTAuthMiddleware authenticates requests via the Authorization header.
func JWTAuthMiddleware(accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		authenticate(c, accounts, tokenString)
	}
}

// JWTAuthWithQueryToken accepts the token from either the Authorization
// header or a "token" query parameter. Used only for download links opened
// in a new browser tab, where no header can be attached.
func JWTAuthWithQueryToken(accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		authenticate(c, accounts, tokenString)
	}
}

func authenticate(c *gin.Context, accounts AccountLookup, tokenString string) {
	claims, err := utils.ValidateToken(tokenString)
	if err != nil || claims.Subject == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	exists, err := accounts.ExistsByID(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, "User not found")
		c.Abort()
		return
	}

	c.Set("user_id", claims.Subject)
	c.Next()
}
