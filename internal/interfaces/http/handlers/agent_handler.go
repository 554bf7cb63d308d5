package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tredora.backend/internal/domain/entities"
	"tredora.backend/internal/interfaces/http/response"
	"tredora.backend/internal/usecases"
)

// AgentHandler handles the AI form-generation endpoint.
type AgentHandler struct {
	agentUsecase *usecases.AgentUsecase
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(agentUsecase *usecases.AgentUsecase) *AgentHandler {
	return &AgentHandler{agentUsecase: agentUsecase}
}

// Chat handles POST /ai/chat
func (h *AgentHandler) Chat(c *gin.Context) {
	var input entities.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindingError(c, err)
		return
	}

	analysis, err := h.agentUsecase.AnalyzeRequirement(c.Request.Context(), input.Message, input.TradeType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, analysis)
}
