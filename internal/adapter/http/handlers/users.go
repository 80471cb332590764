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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.AddUser(c.Request.Context(), domain.AddUserInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUserPayload) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) RemoveUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	if err := h.userService.RemoveUser(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminImmutable):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgAdminImmutable, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to remove user", zap.String("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	if err := h.userService.ResetPassword(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to reset password", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	lang := middleware.GetLang(c)
	current := middleware.CurrentUser(c)

	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.UpdateAvatar(c.Request.Context(), current.ID, req.Avatar)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update avatar", zap.String("user_id", current.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
