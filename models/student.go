package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents an applicant in the recruitment program
type Student struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	FirstName string         `json:"firstName" gorm:"not null"`
	LastName  string         `json:"lastName" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Contracts []Contract `json:"contracts,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
