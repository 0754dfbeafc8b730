package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// EditionRepository handles database operations for recruitment editions
type EditionRepository struct{}

// NewEditionRepository creates a new edition repository instance
func NewEditionRepository() *EditionRepository {
	return &EditionRepository{}
}

// FindAll retrieves all editions, newest first
func (r *EditionRepository) FindAll() ([]models.Edition, error) {
	var editions []models.Edition
	result := database.DB.Order("year desc").Find(&editions)
	return editions, result.Error
}

// Current retrieves the edition marked as current
func (r *EditionRepository) Current() (models.Edition, error) {
	var edition models.Edition
	result := database.DB.First(&edition, "is_current = ?", true)
	return edition, result.Error
}

// EditionOf resolves the edition a project belongs to
func (r *EditionRepository) EditionOf(tx *gorm.DB, projectID string) (string, error) {
	var project models.Project
	result := tx.Select("edition_id").First(&project, "id = ?", projectID)
	return project.EditionID, result.Error
}

// Create inserts a new edition into the database
func (r *EditionRepository) Create(edition models.Edition) (models.Edition, error) {
	result := database.DB.Create(&edition)
	return edition, result.Error
}

// SetCurrent marks one edition as current and clears the flag elsewhere
func (r *EditionRepository) SetCurrent(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Edition{}).Where("is_current = ?", true).
			Update("is_current", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Edition{}).Where("id = ?", id).
			Update("is_current", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
