package models

import (
	"time"

	"github.com/google/uuid"
)

type Bank struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name      string        `gorm:"type:varchar(255);not null"`
	SwiftCode string        `gorm:"type:varchar(11);uniqueIndex;not null"`
	Country   string        `gorm:"type:varchar(100);not null"`
	City      string        `gorm:"type:varchar(100);not null"`
	Type      string        `gorm:"type:varchar(50);not null"`
	Contacts  []BankContact `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BankContact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

type EmailTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
