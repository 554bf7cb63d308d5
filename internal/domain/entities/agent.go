package entities

import "time"

// ChatInput is the natural-language requirement sent to the AI agent.
type ChatInput struct {
	Message   string `json:"message" binding:"required"`
	TradeType string `json:"tradeType"`
}

// AgentFieldOption mirrors FieldOptionInput in the coerced agent output.
type AgentFieldOption struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault"`
}

// AgentFieldValidation mirrors FieldValidationInput in the coerced agent
// output.
type AgentFieldValidation struct {
	RuleType     string `json:"ruleType"`
	Value        string `json:"value,omitempty"`
	ErrorMessage string `json:"errorMessage"`
}

// AgentFormField is one generated field. Every member is defaulted rather
// than rejected when the model omits it.
type AgentFormField struct {
	Key          string                 `json:"key"`
	Label        string                 `json:"label"`
	FieldType    string                 `json:"fieldType"`
	Placeholder  string                 `json:"placeholder,omitempty"`
	DefaultValue string                 `json:"defaultValue,omitempty"`
	HelpText     string                 `json:"helpText,omitempty"`
	Order        int                    `json:"order"`
	Width        string                 `json:"width"`
	Options      []AgentFieldOption     `json:"options,omitempty"`
	Validations  []AgentFieldValidation `json:"validations,omitempty"`
}

// RequirementAnalysis is the structured result of analyzing a requirement.
type RequirementAnalysis struct {
	Analysis         string           `json:"analysis"`
	FormTemplateName string           `json:"formTemplateName"`
	Description      string           `json:"description,omitempty"`
	Fields           []AgentFormField `json:"fields"`
	AdditionalNotes  string           `json:"additionalNotes,omitempty"`
}

// ChatAssistantResponse is a free-text assistant reply.
type ChatAssistantResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
