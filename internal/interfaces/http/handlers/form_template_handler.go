package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/interfaces/http/response"
	"tredora.backend/internal/usecases"
)

// FormTemplateHandler handles form template endpoints.
type FormTemplateHandler struct {
	templateUsecase *usecases.FormTemplateUsecase
}

// NewFormTemplateHandler creates a new form template handler.
func NewFormTemplateHandler(templateUsecase *usecases.FormTemplateUsecase) *FormTemplateHandler {
	return &FormTemplateHandler{templateUsecase: templateUsecase}
}

// Create handles POST /form-templates
func (h *FormTemplateHandler) Create(c *gin.Context) {
	var input entities.CreateFormTemplateInput
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

// List handles GET /form-templates
func (h *FormTemplateHandler) List(c *gin.Context) {
	templates, err := h.templateUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, templates)
}

// Get handles GET /form-templates/:id
func (h *FormTemplateHandler) Get(c *gin.Context) {
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

// Update handles PATCH /form-templates/:id
func (h *FormTemplateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid template id"))
		return
	}

	var input entities.UpdateFormTemplateInput
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

// Delete handles DELETE /form-templates/:id
func (h *FormTemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid template id"))
		return
	}

	if err := h.templateUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "form template deleted successfully")
}
