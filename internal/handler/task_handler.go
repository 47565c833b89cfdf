package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"choreboard/internal/export"
	dtos "choreboard/internal/model/DTOs"
	"choreboard/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TaskHandler holds dependencies for HTTP handlers.
type TaskHandler struct {
	svc    service.TaskService
	logger *zap.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(s service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: s, logger: logger}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var dto dtos.CreateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err, "title is required")})
		return
	}

	task, err := h.svc.Create(c.Request.Context(), dto.ToModel())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTask handles PUT /tasks/:id
// {"status": "done"} completes the task; any other body overwrites its fields.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto dtos.UpdateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, dto.ToUpdate())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to update task")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "task not found", "failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Upcoming handles GET /tasks/upcoming
func (h *TaskHandler) Upcoming(c *gin.Context) {
	items, err := h.svc.Upcoming(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to list upcoming tasks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Overdue handles GET /tasks/overdue
func (h *TaskHandler) Overdue(c *gin.Context) {
	items, err := h.svc.Overdue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to list overdue tasks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CompletedThisWeek handles GET /tasks/completed-week
func (h *TaskHandler) CompletedThisWeek(c *gin.Context) {
	items, err := h.svc.CompletedThisWeek(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to list completed tasks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ExportTasks handles GET /tasks/export and streams an XLSX workbook.
func (h *TaskHandler) ExportTasks(c *gin.Context) {
	items, err := h.svc.ListDetailed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to export tasks")
		return
	}
	data, err := export.TasksWorkbook(items)
	if err != nil {
		respondError(c, h.logger, err, "task not found", "failed to export tasks")
		return
	}

	filename := "tasks-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
