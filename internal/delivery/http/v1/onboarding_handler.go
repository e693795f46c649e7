package v1

import (
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

func NewOnboardingHandler(protected *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	onboarding := protected.Group("/onboarding")
	{
		onboarding.GET("/:id", handler.GetProgress)
		onboarding.PUT("/:id", handler.UpdateProgress)
	}
}

type UpdateProgressRequest struct {
	Stage    *string `json:"stage" binding:"omitempty,oneof=prepare orient land integrate excel"`
	Progress *int    `json:"progress" binding:"omitempty,min=0,max=100"`
}

// GetProgress godoc
// @Summary      Get onboarding progress
// @Description  Current stage, percentage, key dates and the user's onboarding tasks grouped by stage
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.ProgressDetails}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding/{id} [get]
// @Security     BearerAuth
func (h *OnboardingHandler) GetProgress(c *gin.Context) {
	details, err := h.onboardingUC.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding progress retrieved", details)
}

// UpdateProgress godoc
// @Summary      Update onboarding progress
// @Description  Change the user's stage and/or completion percentage (HR, supervisor, or the user themselves)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "User ID"
// @Param        update  body      UpdateProgressRequest  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.OnboardingProgress}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding/{id} [put]
// @Security     BearerAuth
func (h *OnboardingHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	update := &domain.ProgressUpdateRequest{Progress: req.Progress}
	if req.Stage != nil {
		stage := domain.Stage(*req.Stage)
		update.Stage = &stage
	}

	progress, err := h.onboardingUC.UpdateProgress(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding progress updated", progress)
}
