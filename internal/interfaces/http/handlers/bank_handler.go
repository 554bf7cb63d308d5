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

// BankHandler handles bank registry endpoints.
type BankHandler struct {
	bankUsecase *usecases.BankUsecase
}

// NewBankHandler creates a new bank handler.
func NewBankHandler(bankUsecase *usecases.BankUsecase) *BankHandler {
	return &BankHandler{bankUsecase: bankUsecase}
}

// Create handles POST /banks
func (h *BankHandler) Create(c *gin.Context) {
	var input entities.CreateBankInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	bank, err := h.bankUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, bank)
}

// List handles GET /banks
func (h *BankHandler) List(c *gin.Context) {
	banks, err := h.bankUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, banks)
}

// Get handles GET /banks/:id
func (h *BankHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bank id"))
		return
	}

	bank, err := h.bankUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, bank)
}

// Update handles PATCH /banks/:id
func (h *BankHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bank id"))
		return
	}

	var input entities.UpdateBankInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	bank, err := h.bankUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, bank)
}

// Delete handles DELETE /banks/:id
func (h *BankHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bank id"))
		return
	}

	if err := h.bankUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "bank deleted successfully")
}
