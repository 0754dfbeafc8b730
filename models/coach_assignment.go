package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoachAssignment attaches one staff user to one project. There is no
// capacity limit, only uniqueness of the (user, project) pair.
type CoachAssignment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (a *CoachAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
