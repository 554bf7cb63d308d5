package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/infrastructure/models"
)

// BankRepository implements bank registry persistence.
type BankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository.
func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{db: db}
}

// Create inserts a bank with its contacts.
func (r *BankRepository) Create(ctx context.Context, bank *entities.Bank) error {
	m := bankToModel(bank)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	for i := range m.Contacts {
		if m.Contacts[i].ID == uuid.Nil {
			m.Contacts[i].ID = uuid.New()
		}
		m.Contacts[i].BankID = m.ID
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	bank.ID = m.ID
	bank.CreatedAt = m.CreatedAt
	bank.UpdatedAt = m.UpdatedAt
	for i := range bank.Contacts {
		bank.Contacts[i].ID = m.Contacts[i].ID
		bank.Contacts[i].BankID = m.ID
	}
	return nil
}

// GetByID loads a bank with its contacts.
func (r *BankRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bank, error) {
	var m models.Bank
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bankToEntity(&m), nil
}

// GetBySwiftCode finds a bank by SWIFT code.
func (r *BankRepository) GetBySwiftCode(ctx context.Context, swiftCode string) (*entities.Bank, error) {
	var m models.Bank
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("swift_code = ?", swiftCode).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bankToEntity(&m), nil
}

// List returns every bank with contacts, newest first.
func (r *BankRepository) List(ctx context.Context) ([]*entities.Bank, error) {
	var bankModels []models.Bank
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&bankModels).Error
	if err != nil {
		return nil, err
	}

	banks := make([]*entities.Bank, 0, len(bankModels))
	for i := range bankModels {
		banks = append(banks, bankToEntity(&bankModels[i]))
	}
	return banks, nil
}

// Update rewrites scalar columns and, when replaceContacts is set, swaps
// the full contact list for the one on the entity.
func (r *BankRepository) Update(ctx context.Context, bank *entities.Bank, replaceContacts bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Bank{}).
		Where("id = ?", bank.ID).
		Updates(map[string]interface{}{
			"name":       bank.Name,
			"swift_code": bank.SwiftCode,
			"country":    bank.Country,
			"city":       bank.City,
			"type":       string(bank.Type),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if !replaceContacts {
		return nil
	}

	if err := db.Where("bank_id = ?", bank.ID).Delete(&models.BankContact{}).Error; err != nil {
		return err
	}
	for i := range bank.Contacts {
		m := models.BankContact{
			ID:     uuid.New(),
			BankID: bank.ID,
			Name:   bank.Contacts[i].Name,
			Phone:  bank.Contacts[i].Phone,
			Email:  bank.Contacts[i].Email,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		bank.Contacts[i].ID = m.ID
		bank.Contacts[i].BankID = bank.ID
	}
	return nil
}

// Delete removes a bank; contacts go with it via the FK cascade.
func (r *BankRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("bank_id = ?", id).Delete(&models.BankContact{}).Error; err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&models.Bank{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func bankToModel(b *entities.Bank) *models.Bank {
	m := &models.Bank{
		ID:        b.ID,
		Name:      b.Name,
		SwiftCode: b.SwiftCode,
		Country:   b.Country,
		City:      b.City,
		Type:      string(b.Type),
	}
	for i := range b.Contacts {
		m.Contacts = append(m.Contacts, models.BankContact{
			ID:    b.Contacts[i].ID,
			Name:  b.Contacts[i].Name,
			Phone: b.Contacts[i].Phone,
			Email: b.Contacts[i].Email,
		})
	}
	return m
}

func bankToEntity(m *models.Bank) *entities.Bank {
	b := &entities.Bank{
		ID:        m.ID,
		Name:      m.Name,
		SwiftCode: m.SwiftCode,
		Country:   m.Country,
		City:      m.City,
		Type:      entities.BankType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Contacts {
		b.Contacts = append(b.Contacts, entities.BankContact{
			ID:     m.Contacts[i].ID,
			BankID: m.Contacts[i].BankID,
			Name:   m.Contacts[i].Name,
			Phone:  m.Contacts[i].Phone,
			Email:  m.Contacts[i].Email,
		})
	}
	return b
}
