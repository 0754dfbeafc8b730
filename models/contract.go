package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractStatus represents the lifecycle state of a contract
type ContractStatus string

const (
	ContractStatusDraft        ContractStatus = "DRAFT"
	ContractStatusSent         ContractStatus = "SENT"
	ContractStatusWaitApproval ContractStatus = "WAIT_APPROVAL"
	ContractStatusApproved     ContractStatus = "APPROVED"
	ContractStatusSigned       ContractStatus = "SIGNED"
	ContractStatusCancelled    ContractStatus = "CANCELLED"
)

// contractTransitions is the closed set of legal forward transitions.
// Any status except CANCELLED may additionally move to CANCELLED.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:        {ContractStatusSent},
	ContractStatusSent:         {ContractStatusWaitApproval},
	ContractStatusWaitApproval: {ContractStatusApproved},
	ContractStatusApproved:     {ContractStatusSigned},
}

// CanTransitionTo reports whether moving from s to next is legal
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	if s == ContractStatusCancelled {
		return false
	}
	if next == ContractStatusCancelled {
		return true
	}
	for _, allowed := range contractTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Contract records one student holding one project role slot. The creator
// and last modifier are kept for the audit trail; the slot reference is
// rewritten in place on reassignment.
type Contract struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID        string         `json:"studentId" gorm:"type:uuid;not null;index"`
	SlotID           string         `json:"slotId" gorm:"type:uuid;not null;index"`
	Status           ContractStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedByID      string         `json:"createdById" gorm:"type:uuid;not null"`
	LastModifiedByID string         `json:"lastModifiedById" gorm:"type:uuid;not null"`
	Note             string         `json:"note" gorm:"default:null"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`

	// Relations
	Student Student         `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Slot    ProjectRoleSlot `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
