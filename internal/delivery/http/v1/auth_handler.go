package v1

import (
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", handler.Login)
	protected.GET("/auth/me", handler.Me)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response{data=LoginResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		Token: token,
		User:  user,
	})
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user retrieved", user)
}
