package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"taskmanager/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	msgTaskCreated = "Task Created"

	errCreateTask   = "failed to create task"
	errListTasks    = "failed to load tasks"
	errGetTask      = "failed to load task"
	errUpdateTask   = "failed to update task"
	errDeleteTask   = "failed to delete task"
	errInvalidID    = "invalid task id"
	errTaskNotFound = "task not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating a task. Timestamps are RFC3339; both are optional
// and default to server time.
type createTaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status" binding:"required"`
	AssigneeID  int       `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Request DTO for updating a task. A client-sent updated_at is accepted for
// wire compatibility but discarded; the server stamps its own.
type updateTaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status" binding:"required"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskIDParam parses the :id path segment, answering 400 on garbage.
func (h *Handler) taskIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      plain
// @Param        body  body   createTaskRequest  true  "Task payload"
// @Success      200   {string}  string  "Task Created"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}

	if _, err := h.services.Tasks.Create(c.Request.Context(), task, actorID(c)); err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateTask, "task_create_failed", err, "title", req.Title)
		return
	}

	c.String(http.StatusOK, msgTaskCreated)
}

// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListTasks, "tasks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Get task by id
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTask(c *gin.Context) {
	id, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.services.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetTask, "task_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Update task
// @Description  updated_at is recomputed server-side; the request value is ignored
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path   int                true  "Task ID"
// @Param        body  body   updateTaskRequest  true  "Task patch"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	id, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	affected, err := h.services.Tasks.Update(c.Request.Context(), id, patch, actorID(c))
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateTask, "task_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

// @Summary      Delete task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	affected, err := h.services.Tasks.Delete(c.Request.Context(), id, actorID(c))
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteTask, "task_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": affected})
}
