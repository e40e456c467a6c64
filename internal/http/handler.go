package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "todolist.com/todolist/internal/data_models"
	apperrors "todolist.com/todolist/internal/errors"
	"todolist.com/todolist/internal/http/validators"
	"todolist.com/todolist/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	logger      *zap.Logger
}

func NewHandler(taskService *services.TaskService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		taskService: taskService,
		logger:      logger,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return h.fail(err, "create task")
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks reads the filter from the request body, falling back to query
// parameters for fields the body leaves out.
func (h *Handler) ListTasks(c echo.Context) error {
	var req dto.TaskFilterRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	query, err := filterFromQuery(c)
	if err != nil {
		return err
	}
	req = req.Merge(query)

	if err := validators.ValidateTaskFilterRequest(&req); err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), req)
	if err != nil {
		return h.fail(err, "list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return h.fail(err, "get task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(err, "update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return h.fail(err, "delete task")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTags(c echo.Context) error {
	tags, err := h.taskService.ListTags(c.Request().Context())
	if err != nil {
		return h.fail(err, "list tags")
	}

	return c.JSON(http.StatusOK, tags)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) fail(err error, action string) error {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(action+" failed", zap.Error(err))
		return echo.NewHTTPError(status, "failed to "+action)
	}
	return echo.NewHTTPError(status, apperrors.Message(err))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDInvalid.Message)
	}
	return uint(id), nil
}

func filterFromQuery(c echo.Context) (dto.TaskFilterRequest, error) {
	var req dto.TaskFilterRequest

	if raw := strings.TrimSpace(c.QueryParam("completed")); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "completed must be a boolean")
		}
		req.Completed = &completed
	}
	if raw := c.QueryParam("dateFrom"); raw != "" {
		req.DateFrom = &raw
	}
	if raw := c.QueryParam("dateTo"); raw != "" {
		req.DateTo = &raw
	}

	return req, nil
}
