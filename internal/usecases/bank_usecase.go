package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
)

// BankUsecase handles the bank registry.
type BankUsecase struct {
	bankRepo repositories.BankRepository
}

// NewBankUsecase creates a new bank usecase.
func NewBankUsecase(bankRepo repositories.BankRepository) *BankUsecase {
	return &BankUsecase{bankRepo: bankRepo}
}

// Create adds a bank after checking the SWIFT code is free.
func (u *BankUsecase) Create(ctx context.Context, input *entities.CreateBankInput) (*entities.Bank, error) {
	if _, err := u.bankRepo.GetBySwiftCode(ctx, input.SwiftCode); err == nil {
		return nil, domainerrors.Conflict("bank with this SWIFT code already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	bank := &entities.Bank{
		Name:      input.Name,
		SwiftCode: input.SwiftCode,
		Country:   input.Country,
		City:      input.City,
		Type:      input.Type,
	}
	for _, c := range input.Contacts {
		bank.Contacts = append(bank.Contacts, entities.BankContact{
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
		})
	}

	if err := u.bankRepo.Create(ctx, bank); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return bank, nil
}

// List returns every bank, newest first.
func (u *BankUsecase) List(ctx context.Context) ([]*entities.Bank, error) {
	banks, err := u.bankRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return banks, nil
}

// GetByID returns one bank with contacts.
func (u *BankUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bank, error) {
	bank, err := u.bankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("bank not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return bank, nil
}

// Update applies a partial update. A changed SWIFT code is re-checked for
// uniqueness; a supplied contact list replaces the stored one wholesale.
func (u *BankUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBankInput) (*entities.Bank, error) {
	bank, err := u.bankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("bank not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.SwiftCode != nil && *input.SwiftCode != bank.SwiftCode {
		other, err := u.bankRepo.GetBySwiftCode(ctx, *input.SwiftCode)
		if err == nil && other.ID != id {
			return nil, domainerrors.Conflict("bank with this SWIFT code already exists")
		}
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		bank.SwiftCode = *input.SwiftCode
	}
	if input.Name != nil {
		bank.Name = *input.Name
	}
	if input.Country != nil {
		bank.Country = *input.Country
	}
	if input.City != nil {
		bank.City = *input.City
	}
	if input.Type != nil {
		bank.Type = *input.Type
	}

	replaceContacts := input.Contacts != nil
	if replaceContacts {
		bank.Contacts = bank.Contacts[:0]
		for _, c := range input.Contacts {
			bank.Contacts = append(bank.Contacts, entities.BankContact{
				Name:  c.Name,
				Phone: c.Phone,
				Email: c.Email,
			})
		}
	}

	if err := u.bankRepo.Update(ctx, bank, replaceContacts); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("bank not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, id)
}

// Delete removes a bank and its contacts.
func (u *BankUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.bankRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("bank not found")
		}
		return domainerrors.InternalError(err)
	}
	if err := u.bankRepo.Delete(ctx, id); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}
