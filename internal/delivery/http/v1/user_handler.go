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

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.POST("", handler.Create)
		users.GET("", handler.List)
		users.GET("/:id", handler.Get)
	}
}

type CreateUserRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	Name        string     `json:"name" binding:"required"`
	Password    string     `json:"password" binding:"required,min=8"`
	Role        string     `json:"role" binding:"omitempty,oneof=employee supervisor manager hr"`
	ProgramType string     `json:"program_type" binding:"omitempty,oneof=engineering product sales operations all"`
	StartDate   *time.Time `json:"start_date"`
}

// Create godoc
// @Summary      Create a user
// @Description  Register a new employee account (HR only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "User JSON"
// @Success      201  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		ProgramType: req.ProgramType,
		StartDate:   req.StartDate,
	}

	if err := h.userUC.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", user)
}

// List godoc
// @Summary      List users
// @Description  Paginated user list (HR, supervisor, manager)
// @Tags         users
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      403  {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	users, total, err := h.userUC.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", gin.H{
		"users": users,
		"total": total,
		"page":  page,
	})
}

// Get godoc
// @Summary      Get a user
// @Description  Fetch one user by id (self, HR, supervisor or manager)
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
