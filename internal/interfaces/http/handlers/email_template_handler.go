package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/interfaces/http/response"
	"tredora.backend/internal/usecases"
)

// EmailTemplateHandler handles email template endpoints.
type EmailTemplateHandler struct {
	templateUsecase *usecases.EmailTemplateUsecase
}

// NewEmailTemplateHandler creates a new email template handler.
func NewEmailTemplateHandler(templateUsecase *usecases.EmailTemplateUsecase) *EmailTemplateHandler {
	return &EmailTemplateHandler{templateUsecase: templateUsecase}
}

// Create handles POST /email-templates
func (h *EmailTemplateHandler) Create(c *gin.Context) {
	var input entities.CreateEmailTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	template, err := h.templateUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, template)
}

// List handles GET /email-templates
func (h *EmailTemplateHandler) List(c *gin.Context) {
	templates, err := h.templateUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, templates)
}

// Get handles GET /email-templates/:id
func (h *EmailTemplateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid template id"))
		return
	}

	template, err := h.templateUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, template)
}

// GetByKey handles GET /email-templates/by-key/:key
func (h *EmailTemplateHandler) GetByKey(c *gin.Context) {
	template, err := h.templateUsecase.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, template)
}

// Render handles GET /email-templates/render/:key?variables=<json>
// A malformed variables parameter renders with no substitutions.
func (h *EmailTemplateHandler) Render(c *gin.Context) {
	variables := map[string]string{}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &variables); err != nil {
			variables = map[string]string{}
		}
	}

	rendered, err := h.templateUsecase.Render(c.Request.Context(), c.Param("key"), variables)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rendered)
}

// Update handles PATCH /email-templates/:id
func (h *EmailTemplateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid template id"))
		return
	}

	var input entities.UpdateEmailTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	template, err := h.templateUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, template)
}

// Delete handles DELETE /email-templates/:id
func (h *EmailTemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid template id"))
		return
	}

	if err := h.templateUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "email template deleted successfully")
}
