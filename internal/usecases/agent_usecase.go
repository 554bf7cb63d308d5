package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/pkg/logger"
)

// TextGenerator is the single-turn language-model call the agent needs.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AgentUsecase turns natural-language trade requirements into form field
// definitions and answers free-text questions.
type AgentUsecase struct {
	generator TextGenerator
}

// NewAgentUsecase creates a new agent usecase.
func NewAgentUsecase(generator TextGenerator) *AgentUsecase {
	return &AgentUsecase{generator: generator}
}

// AnalyzeRequirement asks the model to design a form for the requirement and
// coerces the reply into a RequirementAnalysis. Malformed model output maps
// to BadRequest so the client can rephrase and retry.
func (u *AgentUsecase) AnalyzeRequirement(ctx context.Context, message, tradeType string) (*entities.RequirementAnalysis, error) {
	userPrompt := message
	if tradeType != "" {
		userPrompt = fmt.Sprintf("Trade type: %s\n\nRequirement: %s", tradeType, message)
	}

	raw, err := u.generator.Generate(ctx, requirementSystemPrompt, userPrompt)
	if err != nil {
		logger.Error(ctx, "requirement analysis call failed", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}

	var analysis entities.RequirementAnalysis
	if err := repairModelJSON(raw, &analysis); err != nil {
		logger.Warn(ctx, "model returned unusable form definition", zap.Error(err))
		return nil, domainerrors.BadRequest(err.Error())
	}

	normalizeFields(analysis.Fields)
	return &analysis, nil
}

// Chat answers a free-text question with the assistant persona.
func (u *AgentUsecase) Chat(ctx context.Context, message string) (*entities.ChatAssistantResponse, error) {
	reply, err := u.generator.Generate(ctx, chatAssistantSystemPrompt, message)
	if err != nil {
		logger.Error(ctx, "chat assistant call failed", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}
	return &entities.ChatAssistantResponse{
		Response:  reply,
		Timestamp: time.Now(),
	}, nil
}

// normalizeFields backfills whatever the model omitted so every generated
// field is usable as a CreateFormTemplateInput field without further checks.
func normalizeFields(fields []entities.AgentFormField) {
	for i := range fields {
		f := &fields[i]
		if f.Key == "" {
			f.Key = fmt.Sprintf("field%d", i+1)
		}
		if f.Label == "" {
			f.Label = fmt.Sprintf("Field %d", i+1)
		}
		if f.FieldType == "" {
			f.FieldType = string(entities.FieldTypeText)
		}
		if f.Order == 0 {
			f.Order = i + 1
		}
		if f.Width == "" {
			f.Width = "full"
		}
		for j := range f.Options {
			if f.Options[j].Order == 0 {
				f.Options[j].Order = j + 1
			}
		}
	}
}
