package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/auth"
)

func protectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, UserType: models.UserTypeStudent})
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestJWTAuth_BadToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: -time.Minute})
	token, _, err := jwtService.GenerateToken(&models.User{ID: 7})
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
