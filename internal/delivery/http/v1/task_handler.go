package v1

import (
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskUC domain.TaskUsecase
}

func NewTaskHandler(protected *gin.RouterGroup, taskUC domain.TaskUsecase) {
	handler := &TaskHandler{taskUC: taskUC}

	tasks := protected.Group("/tasks")
	{
		tasks.POST("", handler.Create)
		tasks.PATCH("/:id/toggle", handler.Toggle)
		tasks.DELETE("/:id", handler.Delete)
	}

	protected.GET("/users/:id/tasks", handler.ListByUser)
}

type CreateTaskRequest struct {
	UserID          string     `json:"user_id" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	DueDate         *time.Time `json:"due_date"`
	Priority        string     `json:"priority" binding:"omitempty,oneof=high medium low"`
	OnboardingStage string     `json:"onboarding_stage" binding:"omitempty,oneof=prepare orient land integrate excel"`
	ControlledBy    string     `json:"controlled_by" binding:"omitempty,oneof=hr supervisor manager"`
}

// Create godoc
// @Summary      Create a task
// @Description  Create a task for a user (HR, supervisor, manager)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body      CreateTaskRequest  true  "Task JSON"
// @Success      201  {object}  response.Response{data=domain.Task}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	task := &domain.Task{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Priority:     domain.Priority(req.Priority),
		ControlledBy: domain.ControlledBy(req.ControlledBy),
	}
	if req.OnboardingStage != "" {
		stage := domain.Stage(req.OnboardingStage)
		task.OnboardingStage = &stage
	}

	if err := h.taskUC.CreateTask(c.Request.Context(), task); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Task created", task)
}

// ListByUser godoc
// @Summary      List a user's tasks
// @Description  All tasks owned by the user (self, HR, supervisor or manager)
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.Task}
// @Failure      403  {object}  response.Response
// @Router       /users/{id}/tasks [get]
// @Security     BearerAuth
func (h *TaskHandler) ListByUser(c *gin.Context) {
	tasks, err := h.taskUC.ListUserTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Tasks retrieved", tasks)
}

// Toggle godoc
// @Summary      Toggle task completion
// @Description  Flip a task between complete and incomplete
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response{data=domain.Task}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id}/toggle [patch]
// @Security     BearerAuth
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid task id"))
		return
	}

	task, err := h.taskUC.ToggleTask(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Task updated", task)
}

// Delete godoc
// @Summary      Delete a task
// @Description  Remove a task (HR, supervisor, manager)
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid task id"))
		return
	}

	if err := h.taskUC.DeleteTask(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Task deleted", nil)
}
