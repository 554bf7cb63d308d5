package entities

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is a reusable message body with `{{var}}` placeholders,
// addressed by a unique key.
type EmailTemplate struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateEmailTemplateInput represents input for creating an email template.
type CreateEmailTemplateInput struct {
	Key     string `json:"key" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateEmailTemplateInput represents a partial email template update.
type UpdateEmailTemplateInput struct {
	Key     *string `json:"key"`
	Subject *string `json:"subject"`
	Content *string `json:"content"`
}

// RenderedEmail is the result of resolving a template against variables.
type RenderedEmail struct {
	Key     string `json:"key"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}
