package repositories

import (
	"context"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
)

// BankRepository defines bank registry operations.
type BankRepository interface {
	// Create inserts the bank with its nested contacts.
	Create(ctx context.Context, bank *entities.Bank) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Bank, error)
	GetBySwiftCode(ctx context.Context, swiftCode string) (*entities.Bank, error)
	// List returns every bank with contacts, newest first.
	List(ctx context.Context) ([]*entities.Bank, error)
	// Update rewrites the bank's scalar fields; when replaceContacts is set
	// the existing contacts are deleted and the supplied set inserted.
	Update(ctx context.Context, bank *entities.Bank, replaceContacts bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailTemplateRepository defines email template operations.
type EmailTemplateRepository interface {
	Create(ctx context.Context, template *entities.EmailTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error)
	GetByKey(ctx context.Context, key string) (*entities.EmailTemplate, error)
	List(ctx context.Context) ([]*entities.EmailTemplate, error)
	Update(ctx context.Context, template *entities.EmailTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
