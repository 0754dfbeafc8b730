package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationDecision represents the outcome recorded by an evaluator
type EvaluationDecision string

const (
	DecisionYes   EvaluationDecision = "YES"
	DecisionMaybe EvaluationDecision = "MAYBE"
	DecisionNo    EvaluationDecision = "NO"
)

// Evaluation is the decision a coach or admin recorded about a student on
// a project. A final evaluation is binding; when the assignment it judged
// is revoked, the evaluation is demoted to non-final rather than deleted,
// so the decision survives as a historical record.
type Evaluation struct {
	ID         string             `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID  string             `json:"studentId" gorm:"type:uuid;not null;index"`
	ProjectID  string             `json:"projectId" gorm:"type:uuid;not null;index"`
	Decision   EvaluationDecision `json:"decision" gorm:"type:varchar(10);not null"`
	IsFinal    bool               `json:"isFinal" gorm:"default:false"`
	Motivation string             `json:"motivation" gorm:"default:null"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// BeforeCreate assigns a UUID so the id is valid on every dialect
func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
