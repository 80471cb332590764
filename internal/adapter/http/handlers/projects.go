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

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	current := middleware.CurrentUser(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), domain.CreateProjectInput{
		Name:      req.Name,
		OwnerID:   current.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProjectPayload) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("id")

	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	project, err := h.projectService.UpdateProjectStatus(c.Request.Context(), projectID, domain.ProjectStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
			)
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		default:
			zap.L().Error("failed to update project status", zap.String("project_id", projectID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("id")

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input := domain.CreateTaskInput{
		Name:       req.Name,
		AssigneeID: req.AssigneeID,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	project, err := h.projectService.CreateTask(c.Request.Context(), projectID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTaskPayload):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		default:
			zap.L().Error("failed to create task", zap.String("project_id", projectID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("id")
	taskID := c.Param("taskId")

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	project, err := h.projectService.UpdateTaskStatus(c.Request.Context(), projectID, taskID, domain.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
			)
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task status",
				zap.String("project_id", projectID),
				zap.String("task_id", taskID),
				zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}
