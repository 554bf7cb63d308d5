package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type FormTemplate struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null"`
	Description null.String `gorm:"type:text"`
	IsActive    bool        `gorm:"not null;default:true"`
	Version     int         `gorm:"not null;default:1"`
	Fields      []FormField `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormField keeps its display position in sort_order; "order" stays out of
// the schema so raw ORDER BY clauses need no quoting.
type FormField struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TemplateID   uuid.UUID         `gorm:"type:uuid;index;not null"`
	Key          string            `gorm:"type:varchar(100);not null"`
	Label        string            `gorm:"type:varchar(255);not null"`
	FieldType    string            `gorm:"type:varchar(20);not null"`
	Placeholder  null.String       `gorm:"type:varchar(255)"`
	DefaultValue null.String       `gorm:"type:text"`
	Answer       null.String       `gorm:"type:text"`
	HelpText     null.String       `gorm:"type:text"`
	SortOrder    int               `gorm:"not null"`
	Width        string            `gorm:"type:varchar(10);not null;default:'full'"`
	Options      []FieldOption     `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
	Validations  []FieldValidation `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type FieldOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FieldID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Label     string    `gorm:"type:varchar(255);not null"`
	Value     string    `gorm:"type:varchar(255);not null"`
	SortOrder int       `gorm:"not null"`
	IsDefault bool      `gorm:"not null;default:false"`
}

type FieldValidation struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FieldID      uuid.UUID   `gorm:"type:uuid;index;not null"`
	RuleType     string      `gorm:"type:varchar(20);not null"`
	Value        null.String `gorm:"type:varchar(255)"`
	ErrorMessage string      `gorm:"type:varchar(255);not null"`
}

type Request struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CreatorID      uuid.UUID     `gorm:"type:uuid;index;not null"`
	FormTemplateID uuid.UUID     `gorm:"type:uuid;index;not null"`
	Creator        *User         `gorm:"foreignKey:CreatorID"`
	FormTemplate   *FormTemplate `gorm:"foreignKey:FormTemplateID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
