package entities

import (
	"time"

	"github.com/google/uuid"
)

// Request is a submitted or in-progress form instance linking a creator to a
// form template.
type Request struct {
	ID             uuid.UUID     `json:"id"`
	CreatorID      uuid.UUID     `json:"creatorId"`
	FormTemplateID uuid.UUID     `json:"formTemplateId"`
	Creator        *UserSummary  `json:"creator,omitempty"`
	FormTemplate   *FormTemplate `json:"formTemplate,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CreateRequestInput represents input for creating a request.
type CreateRequestInput struct {
	CreatorID      uuid.UUID `json:"creatorId" binding:"required"`
	FormTemplateID uuid.UUID `json:"formTemplateId" binding:"required"`
}

// UpdateRequestInput represents a partial request update.
type UpdateRequestInput struct {
	CreatorID      *uuid.UUID `json:"creatorId"`
	FormTemplateID *uuid.UUID `json:"formTemplateId"`
}

// RequestFilter narrows a request listing. Zero values match everything.
type RequestFilter struct {
	CreatorID      uuid.UUID
	FormTemplateID uuid.UUID
}

// Analytics holds the platform-wide counters. TotalTransactions is reserved
// and always zero for now.
type Analytics struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalRequests     int64 `json:"totalRequests"`
	TotalTemplates    int64 `json:"totalTemplates"`
	TotalTransactions int64 `json:"totalTransactions"`
}
