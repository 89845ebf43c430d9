package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourly/internal/services"
	"tourly/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// AdminMiddleware resolves the caller's role from the user store by claim
// email rather than trusting a role baked into the token.
func AdminMiddleware(userService services.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		isAdmin, err := userService.IsAdmin(c.Request.Context(), email)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !isAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
