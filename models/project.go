package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a partner-defined project inside one edition
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	PartnerName string         `json:"partnerName" gorm:"default:null"`
	EditionID   string         `json:"editionId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Edition Edition           `json:"edition,omitempty" gorm:"foreignKey:EditionID;constraint:OnDelete:CASCADE"`
	Slots   []ProjectRoleSlot `json:"slots,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Coaches []CoachAssignment `json:"coaches,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
