package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByEditionID retrieves all projects in an edition
func (r *ProjectRepository) FindByEditionID(editionID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("edition_id = ?", editionID).Order("name asc").Find(&projects)
	return projects, result.Error
}

// WithSlotsAndCoaches loads a project with its role slots and coach assignments
func (r *ProjectRepository) WithSlotsAndCoaches(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("Slots").Preload("Slots.Role").
		Preload("Coaches").Preload("Coaches.User").
		First(&project, "id = ?", id)
	return project, result.Error
}

// LockByID re-reads a project row under a row-level lock inside tx.
// Coach assignment and un-assignment serialize on this lock.
func (r *ProjectRepository) LockByID(tx *gorm.DB, id string) (models.Project, error) {
	var project models.Project
	result := forUpdate(tx).First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project from the database (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Project{}, "id = ?", id)
	return result.Error
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
