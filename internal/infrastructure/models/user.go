package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	Profile      *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	FullName  string     `gorm:"type:varchar(255);not null"`
	Corporate *Corporate `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Corporate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Designation string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
