package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// EvaluationRepository is the narrow interface into the evaluation
// subsystem the staffing engine needs: look up decisions for one
// (student, project) pair and demote final ones.
type EvaluationRepository struct{}

// NewEvaluationRepository creates a new evaluation repository instance
func NewEvaluationRepository() *EvaluationRepository {
	return &EvaluationRepository{}
}

// FindByStudentAndProject retrieves all evaluations recorded for a
// student on a project
func (r *EvaluationRepository) FindByStudentAndProject(tx *gorm.DB, studentID, projectID string) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	result := tx.Where("student_id = ? AND project_id = ?", studentID, projectID).Find(&evaluations)
	return evaluations, result.Error
}

// DemoteToNonFinal turns a final evaluation into a historical,
// non-binding record. The decision itself is never deleted.
func (r *EvaluationRepository) DemoteToNonFinal(tx *gorm.DB, id string) error {
	result := tx.Model(&models.Evaluation{}).
		Where("id = ?", id).
		Update("is_final", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Create inserts a new evaluation
func (r *EvaluationRepository) Create(evaluation models.Evaluation) (models.Evaluation, error) {
	result := database.DB.Create(&evaluation)
	return evaluation, result.Error
}
