package v1

import (
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateUC domain.TemplateUsecase
}

func NewTemplateHandler(protected *gin.RouterGroup, templateUC domain.TemplateUsecase) {
	handler := &TemplateHandler{templateUC: templateUC}

	templates := protected.Group("/onboarding-templates")
	{
		templates.POST("", handler.Create)
		templates.GET("", handler.List)
		templates.GET("/:id", handler.Get)
		templates.PUT("/:id", handler.Update)
		templates.DELETE("/:id", handler.Delete)
		templates.POST("/apply", handler.Apply)
	}
}

type TemplateRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	ProgramType string                 `json:"program_type" binding:"omitempty,oneof=engineering product sales operations all"`
	Phases      []domain.TemplatePhase `json:"phases"`
	IsActive    *bool                  `json:"is_active"`
}

type ApplyTemplateRequest struct {
	TemplateID int64  `json:"template_id" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
}

func (r *TemplateRequest) toDomain() *domain.OnboardingTemplate {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &domain.OnboardingTemplate{
		Name:        r.Name,
		Description: r.Description,
		ProgramType: r.ProgramType,
		Phases:      r.Phases,
		IsActive:    isActive,
	}
}

// Create godoc
// @Summary      Create an onboarding template
// @Description  Author a new phase/task blueprint (HR only)
// @Tags         onboarding-templates
// @Accept       json
// @Produce      json
// @Param        template  body      TemplateRequest  true  "Template JSON"
// @Success      201  {object}  response.Response{data=domain.OnboardingTemplate}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /onboarding-templates [post]
// @Security     BearerAuth
func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	tmpl := req.toDomain()
	if err := h.templateUC.CreateTemplate(c.Request.Context(), tmpl); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Template created", tmpl)
}

// List godoc
// @Summary      List onboarding templates
// @Description  Paginated template list (HR only)
// @Tags         onboarding-templates
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.OnboardingTemplate}
// @Failure      403  {object}  response.Response
// @Router       /onboarding-templates [get]
// @Security     BearerAuth
func (h *TemplateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	templates, total, err := h.templateUC.ListTemplates(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Templates retrieved", gin.H{
		"templates": templates,
		"total":     total,
		"page":      page,
	})
}

// Get godoc
// @Summary      Get an onboarding template
// @Tags         onboarding-templates
// @Produce      json
// @Param        id   path      int  true  "Template ID"
// @Success      200  {object}  response.Response{data=domain.OnboardingTemplate}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding-templates/{id} [get]
// @Security     BearerAuth
func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid template id"))
		return
	}

	tmpl, err := h.templateUC.GetTemplate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template retrieved", tmpl)
}

// Update godoc
// @Summary      Update an onboarding template
// @Tags         onboarding-templates
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Template ID"
// @Param        template  body      TemplateRequest  true  "Template JSON"
// @Success      200  {object}  response.Response{data=domain.OnboardingTemplate}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding-templates/{id} [put]
// @Security     BearerAuth
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid template id"))
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	tmpl := req.toDomain()
	tmpl.ID = id
	if err := h.templateUC.UpdateTemplate(c.Request.Context(), tmpl); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template updated", tmpl)
}

// Delete godoc
// @Summary      Delete an onboarding template
// @Tags         onboarding-templates
// @Produce      json
// @Param        id   path      int  true  "Template ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding-templates/{id} [delete]
// @Security     BearerAuth
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid template id"))
		return
	}

	if err := h.templateUC.DeleteTemplate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template deleted", nil)
}

// Apply godoc
// @Summary      Apply a template to a user
// @Description  Materialize the template's phase tasks for the user and initialize their progress record (HR only). Re-applying duplicates tasks.
// @Tags         onboarding-templates
// @Accept       json
// @Produce      json
// @Param        request  body      ApplyTemplateRequest  true  "Template and user"
// @Success      200  {object}  response.Response{data=domain.ApplyResult}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding-templates/apply [post]
// @Security     BearerAuth
func (h *TemplateHandler) Apply(c *gin.Context) {
	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.templateUC.ApplyTemplate(c.Request.Context(), req.TemplateID, req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}
