package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Edition represents one yearly instance of the recruitment program.
// Projects (and through them slots and contracts) are scoped to an edition.
type Edition struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	Year      int            `json:"year" gorm:"not null"`
	IsCurrent bool           `json:"isCurrent" gorm:"default:false;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:EditionID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (e *Edition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
