package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront-api/internal/auth"
	autherrors "go-storefront-api/internal/auth/errors"
	"go-storefront-api/internal/pkg/response"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
	LoginFn    func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	GetMeFn    func(ctx context.Context, userID string) (auth.UserResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.RegisterFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (auth.UserResponse, error) {
	return f.GetMeFn(ctx, userID)
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_register", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				assert.Equal(t, "jordan@example.com", req.Email)
				return auth.AuthResponse{
					User:  auth.UserResponse{ID: "user-1", Name: req.Name, Email: req.Email},
					Token: "signed-token",
				}, nil
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Jordan","email":"jordan@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("error_invalid_payload", func(t *testing.T) {
		svc := &fakeAuthService{}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Jordan","email":"jordan@example.com"`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_email_taken", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Jordan","email":"jordan@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_login", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{
					User:  auth.UserResponse{ID: "user-1", Email: req.Email},
					Token: "signed-token",
				}, nil
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"jordan@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("error_wrong_credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"jordan@example.com","password":"wrongpass"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_profile", func(t *testing.T) {
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, userID string) (auth.UserResponse, error) {
				assert.Equal(t, "user-1", userID)
				return auth.UserResponse{ID: userID, Name: "Jordan", Email: "jordan@example.com"}, nil
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)
		c.Set("user_id_validated", "user-1")

		handler.Profile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jordan@example.com")
	})

	t.Run("error_user_not_found", func(t *testing.T) {
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, userID string) (auth.UserResponse, error) {
				return auth.UserResponse{}, autherrors.ErrUserNotFound
			},
		}
		handler := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)
		c.Set("user_id_validated", "user-1")

		handler.Profile(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
