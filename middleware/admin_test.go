package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requireAdminRouter(claims *utils.UserClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	})
	r.Use(RequireAdmin())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	r := requireAdminRouter(&utils.UserClaims{UserID: 1, Role: models.RoleAdmin})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	r := requireAdminRouter(&utils.UserClaims{UserID: 2, Role: models.RoleUser})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRejectsMissingClaims(t *testing.T) {
	r := requireAdminRouter(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
