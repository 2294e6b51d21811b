package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	"github.com/blueberries/blueberries-backend/internal/db"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

const middlewareTestSecret = "middleware-test-secret"

func setupAuthMiddlewareTest(t *testing.T) (*gin.Engine, *model.User, *model.User) {
	gin.SetMode(gin.TestMode)

	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	user := &model.User{Email: "user@example.com", Password: "hash", Role: model.RoleUser}
	require.NoError(t, gdb.Create(user).Error)
	admin := &model.User{Email: "admin@admin.com", Password: "hash", Role: model.RoleAdmin}
	require.NoError(t, gdb.Create(admin).Error)

	authService := service.NewAuthService(repository.NewUserRepository(gdb), middlewareTestSecret, time.Hour)
	m := NewAuthMiddleware(middlewareTestSecret, authService)

	r := gin.New()
	r.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/admin", m.Authenticate(), m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, user, admin
}

func tokenFor(t *testing.T, user *model.User) string {
	token, err := util.GenerateToken(user.ID, user.Email, middlewareTestSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	r, user, _ := setupAuthMiddlewareTest(t)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "Valid token", authHeader: "Bearer " + tokenFor(t, user), wantStatus: http.StatusOK},
		{name: "Missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "Not bearer", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Garbage token", authHeader: "Bearer not.a.token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	r, user, _ := setupAuthMiddlewareTest(t)

	token, err := util.GenerateToken(user.ID, user.Email, middlewareTestSecret, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Срок действия токена истёк")
}

func TestRequireAdmin(t *testing.T) {
	r, user, admin := setupAuthMiddlewareTest(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
