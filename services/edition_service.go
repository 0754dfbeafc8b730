package services

import (
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// EditionService handles the recruitment edition catalog
type EditionService struct {
	editionRepo *repositories.EditionRepository
}

// NewEditionService creates a new edition service instance
func NewEditionService() *EditionService {
	return &EditionService{
		editionRepo: repositories.NewEditionRepository(),
	}
}

// ListEditions retrieves all editions
func (s *EditionService) ListEditions() ([]models.Edition, error) {
	return s.editionRepo.FindAll()
}

// CurrentEdition retrieves the edition marked as current
func (s *EditionService) CurrentEdition() (models.Edition, error) {
	edition, err := s.editionRepo.Current()
	if err == gorm.ErrRecordNotFound {
		return edition, newError(ErrNotFound, "no current edition is set")
	}
	return edition, err
}

// CreateEdition creates a new edition
func (s *EditionService) CreateEdition(edition models.Edition) (models.Edition, error) {
	return s.editionRepo.Create(edition)
}

// SetCurrentEdition marks an edition as the current one
func (s *EditionService) SetCurrentEdition(id string) error {
	err := s.editionRepo.SetCurrent(id)
	if err == gorm.ErrRecordNotFound {
		return newError(ErrNotFound, "edition %s does not exist", id)
	}
	return err
}
