package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-api/internal/api/metrics"
	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every route it
// serves sits behind the Auth middleware, so a resolved user is always
// available on the context.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()

	return c.JSON(http.StatusCreated, task)
}

// List handles GET /api/tasks.
//
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, nonNil(tasks))
}

// Search handles GET /api/tasks/search?query=.
//
// @Summary      Search the caller's tasks by title substring
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "Case-insensitive title substring"
// @Success      200    {array}   domain.Task
// @Failure      401    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /tasks/search [get]
func (h *TaskHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.Search(c.Request().Context(), user.ID, c.QueryParam("query"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, nonNil(tasks))
}

// Update handles PUT /api/tasks/:id. Only keys present in the payload
// overwrite stored fields.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Complete handles PATCH /api/tasks/:id/complete.
//
// @Summary      Mark a task as completed
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /tasks/{id}/complete [patch]
func (h *TaskHandler) Complete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.service.Complete(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.TasksCompletedTotal.Inc()

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}

// nonNil keeps empty list responses as [] instead of null.
func nonNil(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return []*domain.Task{}
	}
	return tasks
}
