package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhive/internal/adapter/http/dto"
	"rhive/internal/adapter/http/mapper"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
	"rhive/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    *middleware.SessionManager
}

func NewAuthHandler(authService ports.AuthService, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:               h.sessions.Issue(user.ID),
		User:                mapper.ToUserItem(user),
		ForcePasswordChange: user.IsFirstLogin,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Revoke(middleware.BearerToken(c))
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	lang := middleware.GetLang(c)
	current := middleware.CurrentUser(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordPolicy, lang),
		)
		return
	}

	user, err := h.authService.ChangePassword(c.Request.Context(), current.ID, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordPolicy, lang),
			)
		case errors.Is(err, domain.ErrPasswordTooLong):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordTooLong, lang),
			)
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordMismatch, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to change password", zap.String("user_id", current.ID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
