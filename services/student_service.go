package services

import (
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// StudentService handles the thin student surface around the staffing
// engine
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService() *StudentService {
	return &StudentService{
		studentRepo: repositories.NewStudentRepository(),
	}
}

// CreateStudent registers a new student
func (s *StudentService) CreateStudent(student models.Student) (models.Student, error) {
	return s.studentRepo.Create(student)
}

// GetStudent retrieves a student by id
func (s *StudentService) GetStudent(id string) (models.Student, error) {
	student, err := s.studentRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return student, newError(ErrNotFound, "student %s does not exist", id)
	}
	return student, err
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents() ([]models.Student, error) {
	return s.studentRepo.FindAll()
}
