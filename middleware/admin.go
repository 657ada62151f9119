package middleware

import (
	"net/http"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/utils"
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group to ADMIN-role tokens.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
