package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rhive/internal/adapter/http/dto"
	"rhive/internal/adapter/http/handlers"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/core/domain"
	"rhive/pkg/apierrors"
	"rhive/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	user := domain.User{
		ID:           "u1",
		Username:     "michael.r",
		Email:        "michael.r@rhiveconstruction.com",
		Name:         "Michael Rob",
		IsFirstLogin: true,
		Role:         domain.RoleUser,
	}

	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, "michael.r", "RHive12345").Return(user, nil).Once()

	sessions := middleware.NewSessionManager(0)
	handler := handlers.NewAuthHandler(authMock, sessions)

	router := gin.New()
	router.POST("/api/auth/login", middleware.LanguageMiddleware(), handler.Login)

	body := `{"username":"michael.r","password":"RHive12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.Token)
	require.True(t, got.ForcePasswordChange)
	require.Equal(t, "michael.r", got.User.Username)
	require.Equal(t, "user", got.User.Role)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, "michael.r", "wrong").
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()

	handler := handlers.NewAuthHandler(authMock, middleware.NewSessionManager(0))

	router := gin.New()
	router.POST("/api/auth/login", middleware.LanguageMiddleware(), handler.Login)

	body := `{"username":"michael.r","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid username or password.", got.ErrDetails.Message)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := handlers.NewAuthHandler(new(authServiceMock), middleware.NewSessionManager(0))

	router := gin.New()
	router.POST("/api/auth/login", middleware.LanguageMiddleware(), handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"michael.r"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	current := domain.User{ID: "u1", Username: "michael.r", Role: domain.RoleUser, IsFirstLogin: true}
	updated := current
	updated.IsFirstLogin = false

	authMock := new(authServiceMock)
	authMock.On("ChangePassword", mock.Anything, "u1", "brand-new-pass", "brand-new-pass").
		Return(updated, nil).Once()

	userMock := new(userServiceMock)
	router, group, token := authedRouter(userMock, current)

	handler := handlers.NewAuthHandler(authMock, middleware.NewSessionManager(0))
	group.POST("/auth/password", handler.ChangePassword)

	body := `{"new_password":"brand-new-pass","confirm_password":"brand-new-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.IsFirstLogin)
	authMock.AssertExpectations(t)
	userMock.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword_Mismatch(t *testing.T) {
	current := domain.User{ID: "u1", Username: "michael.r", Role: domain.RoleUser}

	authMock := new(authServiceMock)
	authMock.On("ChangePassword", mock.Anything, "u1", "brand-new-pass", "different").
		Return(domain.User{}, domain.ErrPasswordMismatch).Once()

	userMock := new(userServiceMock)
	router, group, token := authedRouter(userMock, current)

	handler := handlers.NewAuthHandler(authMock, middleware.NewSessionManager(0))
	group.POST("/auth/password", handler.ChangePassword)

	body := `{"new_password":"brand-new-pass","confirm_password":"different"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Passwords do not match.", got.ErrDetails.Message)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword_TooLong(t *testing.T) {
	current := domain.User{ID: "u1", Username: "michael.r", Role: domain.RoleUser}
	oversized := strings.Repeat("x", 73)

	authMock := new(authServiceMock)
	authMock.On("ChangePassword", mock.Anything, "u1", oversized, oversized).
		Return(domain.User{}, domain.ErrPasswordTooLong).Once()

	userMock := new(userServiceMock)
	router, group, token := authedRouter(userMock, current)

	handler := handlers.NewAuthHandler(authMock, middleware.NewSessionManager(0))
	group.POST("/auth/password", handler.ChangePassword)

	body := fmt.Sprintf(`{"new_password":%q,"confirm_password":%q}`, oversized, oversized)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Password must be at most 72 characters.", got.ErrDetails.Message)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword_NoSession(t *testing.T) {
	userMock := new(userServiceMock)
	router, group, _ := authedRouter(userMock, domain.User{ID: "u1", Role: domain.RoleUser})

	handler := handlers.NewAuthHandler(new(authServiceMock), middleware.NewSessionManager(0))
	group.POST("/auth/password", handler.ChangePassword)

	body := `{"new_password":"brand-new-pass","confirm_password":"brand-new-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required.", got.ErrDetails.Message)
}

func TestAuthHandler_Logout_RevokesSession(t *testing.T) {
	sessions := middleware.NewSessionManager(time.Hour)
	token := sessions.Issue("u1")

	handler := handlers.NewAuthHandler(new(authServiceMock), sessions)

	router := gin.New()
	router.POST("/api/auth/logout", middleware.LanguageMiddleware(), handler.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := sessions.Resolve(token)
	require.False(t, ok)
}
