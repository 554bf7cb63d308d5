package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FieldType enumerates the renderable input kinds of a form field.
type FieldType string

const (
	FieldTypeText     FieldType = "TEXT"
	FieldTypeTextarea FieldType = "TEXTAREA"
	FieldTypeNumber   FieldType = "NUMBER"
	FieldTypeEmail    FieldType = "EMAIL"
	FieldTypeDate     FieldType = "DATE"
	FieldTypeCheckbox FieldType = "CHECKBOX"
	FieldTypeRadio    FieldType = "RADIO"
	FieldTypeSelect   FieldType = "SELECT"
	FieldTypeFile     FieldType = "FILE"
	FieldTypePassword FieldType = "PASSWORD"
	FieldTypeURL      FieldType = "URL"
	FieldTypeTel      FieldType = "TEL"
)

// ValidationRuleType enumerates the client-side validation rules a field can
// carry.
type ValidationRuleType string

const (
	RuleRequired  ValidationRuleType = "REQUIRED"
	RuleMinLength ValidationRuleType = "MIN_LENGTH"
	RuleMaxLength ValidationRuleType = "MAX_LENGTH"
	RuleMin       ValidationRuleType = "MIN"
	RuleMax       ValidationRuleType = "MAX"
	RulePattern   ValidationRuleType = "PATTERN"
	RuleEmail     ValidationRuleType = "EMAIL"
	RuleURL       ValidationRuleType = "URL"
	RuleCustom    ValidationRuleType = "CUSTOM"
)

// FormTemplate is a versioned, ordered definition of fields that a Request is
// filled against.
type FormTemplate struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	IsActive    bool        `json:"isActive"`
	Version     int         `json:"version"`
	Fields      []FormField `json:"fields"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// FormField is one input of a template. Fields are always read back ordered
// by Order ascending.
type FormField struct {
	ID           uuid.UUID         `json:"id"`
	TemplateID   uuid.UUID         `json:"templateId"`
	Key          string            `json:"key"`
	Label        string            `json:"label"`
	FieldType    FieldType         `json:"fieldType"`
	Placeholder  null.String       `json:"placeholder,omitempty"`
	DefaultValue null.String       `json:"defaultValue,omitempty"`
	Answer       null.String       `json:"answer,omitempty"`
	HelpText     null.String       `json:"helpText,omitempty"`
	Order        int               `json:"order"`
	Width        string            `json:"width"`
	Options      []FieldOption     `json:"options"`
	Validations  []FieldValidation `json:"validations"`
}

// FieldOption is one choice of a SELECT, RADIO or CHECKBOX field.
type FieldOption struct {
	ID        uuid.UUID `json:"id"`
	FieldID   uuid.UUID `json:"fieldId"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Order     int       `json:"order"`
	IsDefault bool      `json:"isDefault"`
}

// FieldValidation is one validation rule attached to a field.
type FieldValidation struct {
	ID           uuid.UUID          `json:"id"`
	FieldID      uuid.UUID          `json:"fieldId"`
	RuleType     ValidationRuleType `json:"ruleType"`
	Value        null.String        `json:"value,omitempty"`
	ErrorMessage string             `json:"errorMessage"`
}

// FieldOptionInput represents an option in a create/update payload.
type FieldOptionInput struct {
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	Order     int    `json:"order" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// FieldValidationInput represents a validation rule in a create/update payload.
type FieldValidationInput struct {
	RuleType     ValidationRuleType `json:"ruleType" binding:"required,oneof=REQUIRED MIN_LENGTH MAX_LENGTH MIN MAX PATTERN EMAIL URL CUSTOM"`
	Value        *string            `json:"value"`
	ErrorMessage string             `json:"errorMessage" binding:"required"`
}

// FormFieldInput represents a field in a create/update payload.
type FormFieldInput struct {
	Key          string                 `json:"key" binding:"required"`
	Label        string                 `json:"label" binding:"required"`
	FieldType    FieldType              `json:"fieldType" binding:"required,oneof=TEXT TEXTAREA NUMBER EMAIL DATE CHECKBOX RADIO SELECT FILE PASSWORD URL TEL"`
	Placeholder  *string                `json:"placeholder"`
	DefaultValue *string                `json:"defaultValue"`
	Answer       *string                `json:"answer"`
	HelpText     *string                `json:"helpText"`
	Order        int                    `json:"order" binding:"required"`
	Width        string                 `json:"width"`
	Options      []FieldOptionInput     `json:"options" binding:"omitempty,dive"`
	Validations  []FieldValidationInput `json:"validations" binding:"omitempty,dive"`
}

// CreateFormTemplateInput represents input for creating a form template.
type CreateFormTemplateInput struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"isActive"`
	Version     *int             `json:"version"`
	Fields      []FormFieldInput `json:"fields" binding:"required,dive"`
}

// UpdateFormTemplateInput represents a partial template update. A nil Fields
// slice leaves the field tree untouched; a non-nil one replaces it entirely.
type UpdateFormTemplateInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"isActive"`
	Version     *int             `json:"version"`
	Fields      []FormFieldInput `json:"fields" binding:"omitempty,dive"`
}
