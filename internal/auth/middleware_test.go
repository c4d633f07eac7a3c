package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *Service, *mocks.MockUserRepositoryInterface) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := NewService("test-secret")
	mw := NewMiddleware(svc, users)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return router, svc, users
}

func TestRequireAuthValidToken(t *testing.T) {
	router, svc, users := setupAuthRouter(t)
	user := testUser()
	users.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, err := svc.GenerateToken(user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	router, svc, users := setupAuthRouter(t)
	user := testUser()
	users.EXPECT().GetByEmail(user.Email).Return(nil, apperrors.ErrUserNotFound)

	token, err := svc.GenerateToken(user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthDeactivatedUser(t *testing.T) {
	router, svc, users := setupAuthRouter(t)
	user := testUser()
	user.IsActive = false
	users.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, err := svc.GenerateToken(user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "deactivated")
}

func TestCurrentUserAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
