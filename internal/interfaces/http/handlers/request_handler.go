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

// RequestHandler handles submitted-request endpoints.
type RequestHandler struct {
	requestUsecase *usecases.RequestUsecase
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestUsecase *usecases.RequestUsecase) *RequestHandler {
	return &RequestHandler{requestUsecase: requestUsecase}
}

// Create handles POST /requests
func (h *RequestHandler) Create(c *gin.Context) {
	var input entities.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	request, err := h.requestUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, request)
}

// List handles GET /requests?creatorId=&formTemplateId=
func (h *RequestHandler) List(c *gin.Context) {
	var filter entities.RequestFilter
	if raw := c.Query("creatorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid creatorId filter"))
			return
		}
		filter.CreatorID = id
	}
	if raw := c.Query("formTemplateId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid formTemplateId filter"))
			return
		}
		filter.FormTemplateID = id
	}

	requests, err := h.requestUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// Get handles GET /requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	request, err := h.requestUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, request)
}

// Update handles PATCH /requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	var input entities.UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	request, err := h.requestUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, request)
}

// Delete handles DELETE /requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	if err := h.requestUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "request deleted successfully")
}
