package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRoleSlot binds one project to one role with a bounded number of
// positions. A project holds at most one slot per role name; the slot is
// created explicitly by an operator or lazily by the staffing engine the
// first time the role is used on that project.
type ProjectRoleSlot struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_slot_project_role"`
	RoleID    string    `json:"roleId" gorm:"type:uuid;not null;index;uniqueIndex:idx_slot_project_role"`
	Positions int       `json:"positions" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Project   Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Role      Role       `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Contracts []Contract `json:"contracts,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for ProjectRoleSlot model
func (ProjectRoleSlot) TableName() string {
	return "project_role_slots"
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (s *ProjectRoleSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
