package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// StudentRepository handles database operations for students
type StudentRepository struct{}

// NewStudentRepository creates a new student repository instance
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// FindAll retrieves all students
func (r *StudentRepository) FindAll() ([]models.Student, error) {
	var students []models.Student
	result := database.DB.Order("last_name asc, first_name asc").Find(&students)
	return students, result.Error
}

// FindByID retrieves a student by its ID
func (r *StudentRepository) FindByID(id string) (models.Student, error) {
	var student models.Student
	result := database.DB.First(&student, "id = ?", id)
	return student, result.Error
}

// LockByID re-reads a student row under a row-level lock inside tx. The
// per-edition uniqueness check serializes on this lock.
func (r *StudentRepository) LockByID(tx *gorm.DB, id string) (models.Student, error) {
	var student models.Student
	result := forUpdate(tx).First(&student, "id = ?", id)
	return student, result.Error
}

// Create inserts a new student into the database
func (r *StudentRepository) Create(student models.Student) (models.Student, error) {
	result := database.DB.Create(&student)
	return student, result.Error
}

// Exists checks if a student exists
func (r *StudentRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
