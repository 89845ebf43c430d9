package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/pkg/utils"
)

// stubUserService satisfies services.UserServiceInterface for the admin
// gate; only IsAdmin matters here.
type stubUserService struct {
	admins map[string]bool
}

func (s *stubUserService) FindUsers(context.Context, request_models.UserFilter) ([]db_models.User, error) {
	return nil, nil
}

func (s *stubUserService) RegisterUser(context.Context, request_models.RegisterUserRequest) (*db_models.User, error) {
	return nil, nil
}

func (s *stubUserService) PromoteToAdmin(context.Context, string) error { return nil }

func (s *stubUserService) UpdateProfile(context.Context, string, request_models.UpdateProfileRequest) error {
	return nil
}

func (s *stubUserService) GetGuideByID(context.Context, string) (*db_models.User, error) {
	return nil, nil
}

func (s *stubUserService) ListGuides(context.Context) ([]db_models.User, error) { return nil, nil }

func (s *stubUserService) IsAdmin(_ context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func authRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authRouter()

	// No header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong scheme.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token passes and the claims land in the context.
	token, err := utils.CreateToken("olga@example.com", "Olga")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "olga@example.com")
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := &stubUserService{admins: map[string]bool{"root@example.com": true}}
	r := authRouter(AdminMiddleware(users))

	touristToken, err := utils.CreateToken("olga@example.com", "Olga")
	require.NoError(t, err)
	adminToken, err := utils.CreateToken("root@example.com", "Root")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+touristToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
