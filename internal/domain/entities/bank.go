package entities

import (
	"time"

	"github.com/google/uuid"
)

// BankType classifies a bank in the registry.
type BankType string

const (
	BankTypeCentral     BankType = "CENTRAL"
	BankTypeCommercial  BankType = "COMMERCIAL"
	BankTypeInvestment  BankType = "INVESTMENT"
	BankTypeDevelopment BankType = "DEVELOPMENT"
)

// Bank is a registry entry keyed by its SWIFT code.
type Bank struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	SwiftCode string        `json:"swiftCode"`
	Country   string        `json:"country"`
	City      string        `json:"city"`
	Type      BankType      `json:"type"`
	Contacts  []BankContact `json:"contacts"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BankContact is a contact person attached to a bank. Contacts are replaced
// wholesale on update; their order is insertion order.
type BankContact struct {
	ID     uuid.UUID `json:"id"`
	BankID uuid.UUID `json:"bankId"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Email  string    `json:"email"`
}

// ContactInput represents a contact in a create/update payload.
type ContactInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateBankInput represents input for creating a bank.
type CreateBankInput struct {
	Country   string         `json:"country" binding:"required"`
	City      string         `json:"city" binding:"required"`
	Name      string         `json:"name" binding:"required"`
	SwiftCode string         `json:"swiftCode" binding:"required"`
	Type      BankType       `json:"type" binding:"required,oneof=CENTRAL COMMERCIAL INVESTMENT DEVELOPMENT"`
	Contacts  []ContactInput `json:"contacts" binding:"dive"`
}

// UpdateBankInput represents a partial bank update. A nil Contacts slice
// leaves the existing contacts untouched; a non-nil one replaces them all.
type UpdateBankInput struct {
	Country   *string        `json:"country"`
	City      *string        `json:"city"`
	Name      *string        `json:"name"`
	SwiftCode *string        `json:"swiftCode"`
	Type      *BankType      `json:"type" binding:"omitempty,oneof=CENTRAL COMMERCIAL INVESTMENT DEVELOPMENT"`
	Contacts  []ContactInput `json:"contacts" binding:"omitempty,dive"`
}
