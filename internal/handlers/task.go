package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMissingTaskID = "missing task id"
	errTaskNotFound  = "task not found"
)

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description" binding:"required,min=5"`
	Status      string     `json:"status" binding:"required,oneof='To Do' 'In Progress' 'Completed'"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time `json:"dueDate"`
}

// updateTaskRequest uses pointers for partial-update semantics: absent
// fields keep their stored values.
type updateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description" binding:"omitempty,min=5"`
	Status      *string    `json:"status" binding:"omitempty,oneof='To Do' 'In Progress' 'Completed'"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof='To Do' 'In Progress' 'Completed'"`
}

// requireTaskID reads the id query parameter, rejecting the request if
// it is absent. Returns "" when already handled.
func (h *Handler) requireTaskID(c *gin.Context) string {
	id := c.Query("id")
	if id == "" {
		h.jsonMessage(c, http.StatusBadRequest, errMissingTaskID)
	}
	return id
}

// @Summary      Create a task
// @Tags         task
// @Accept       json
// @Produce      json
// @Param        body  body  createTaskRequest  true  "Task payload"
// @Success      201  {object}  map[string]interface{}  "message, task"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /task/create [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}

	task, err := h.services.Tasks.Create(c.Request.Context(), authedUserID(c), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "task_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "task created successfully",
		"task":    task,
	})
}

// @Summary      List the caller's tasks
// @Tags         task
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "tasks"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /task/all [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context(), authedUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "task_list_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// @Summary      Update a task (partial)
// @Description  Absent body fields keep their current values.
// @Tags         task
// @Accept       json
// @Produce      json
// @Param        id    query  string             true  "Task id"
// @Param        body  body   updateTaskRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "message, task"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /task/update [patch]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	id := h.requireTaskID(c)
	if id == "" {
		return
	}

	var req updateTaskRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}

	task, err := h.services.Tasks.Update(c.Request.Context(), authedUserID(c), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			h.jsonMessage(c, http.StatusNotFound, errTaskNotFound)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "task_update_failed", err, "taskId", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "task updated successfully",
		"task":    task,
	})
}

// @Summary      Update a task's status
// @Tags         task
// @Accept       json
// @Produce      json
// @Param        id    query  string               true  "Task id"
// @Param        body  body   updateStatusRequest  true  "New status"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /task/update-status [patch]
// @Security     BearerAuth
func (h *Handler) updateTaskStatus(c *gin.Context) {
	id := h.requireTaskID(c)
	if id == "" {
		return
	}

	var req updateStatusRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}

	if _, err := h.services.Tasks.UpdateStatus(c.Request.Context(), authedUserID(c), id, req.Status); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			h.jsonMessage(c, http.StatusNotFound, errTaskNotFound)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "task_update_status_failed", err, "taskId", id)
		return
	}

	h.jsonMessage(c, http.StatusOK, "task status updated successfully")
}

// @Summary      Delete a task
// @Tags         task
// @Produce      json
// @Param        id  query  string  true  "Task id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /task/delete [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id := h.requireTaskID(c)
	if id == "" {
		return
	}

	if err := h.services.Tasks.Delete(c.Request.Context(), authedUserID(c), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			h.jsonMessage(c, http.StatusNotFound, errTaskNotFound)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "task_delete_failed", err, "taskId", id)
		return
	}

	h.jsonMessage(c, http.StatusOK, "task deleted successfully")
}
