package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// CoachAssignmentRepository handles database operations for coach assignments
type CoachAssignmentRepository struct{}

// NewCoachAssignmentRepository creates a new coach assignment repository instance
func NewCoachAssignmentRepository() *CoachAssignmentRepository {
	return &CoachAssignmentRepository{}
}

// FindByProjectID retrieves all coach assignments for a project with users resolved
func (r *CoachAssignmentRepository) FindByProjectID(projectID string) ([]models.CoachAssignment, error) {
	var assignments []models.CoachAssignment
	result := database.DB.Preload("User").Where("project_id = ?", projectID).Find(&assignments)
	return assignments, result.Error
}

// FindByUserID retrieves all projects a coach is assigned to
func (r *CoachAssignmentRepository) FindByUserID(userID string) ([]models.CoachAssignment, error) {
	var assignments []models.CoachAssignment
	result := database.DB.Preload("Project").Where("user_id = ?", userID).Find(&assignments)
	return assignments, result.Error
}

// Exists checks whether a coach is already assigned to a project
func (r *CoachAssignmentRepository) Exists(tx *gorm.DB, userID, projectID string) (bool, error) {
	var count int64
	result := tx.Model(&models.CoachAssignment{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count)
	return count > 0, result.Error
}

// Create inserts a new coach assignment
func (r *CoachAssignmentRepository) Create(tx *gorm.DB, userID, projectID string) (models.CoachAssignment, error) {
	assignment := models.CoachAssignment{
		UserID:    userID,
		ProjectID: projectID,
	}
	result := tx.Create(&assignment)
	return assignment, result.Error
}

// DeleteByUserAndProject removes the assignment of a coach to a project
func (r *CoachAssignmentRepository) DeleteByUserAndProject(tx *gorm.DB, userID, projectID string) error {
	result := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.CoachAssignment{})
	return result.Error
}
