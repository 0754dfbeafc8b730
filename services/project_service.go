package services

import (
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// ProjectService handles the thin project surface around the staffing
// engine
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	editionRepo *repositories.EditionRepository
	coachRepo   *repositories.CoachAssignmentRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		editionRepo: repositories.NewEditionRepository(),
		coachRepo:   repositories.NewCoachAssignmentRepository(),
	}
}

// CreateProject creates a project inside an edition. When no edition id
// is given the current edition is used.
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	if project.EditionID == "" {
		edition, err := s.editionRepo.Current()
		if err == gorm.ErrRecordNotFound {
			return project, newError(ErrArgument, "no current edition is set")
		}
		if err != nil {
			return project, err
		}
		project.EditionID = edition.ID
	}
	return s.projectRepo.Create(project)
}

// GetProjectDetail retrieves a project with its slots and coaches
func (s *ProjectService) GetProjectDetail(projectID string) (models.Project, error) {
	project, err := s.projectRepo.WithSlotsAndCoaches(projectID)
	if err == gorm.ErrRecordNotFound {
		return project, newError(ErrNotFound, "project %s does not exist", projectID)
	}
	return project, err
}

// ListProjects retrieves all projects of an edition; with an empty
// edition id, the current edition's projects
func (s *ProjectService) ListProjects(editionID string) ([]models.Project, error) {
	if editionID == "" {
		edition, err := s.editionRepo.Current()
		if err == gorm.ErrRecordNotFound {
			return nil, newError(ErrArgument, "no current edition is set")
		}
		if err != nil {
			return nil, err
		}
		editionID = edition.ID
	}
	return s.projectRepo.FindByEditionID(editionID)
}

// ListCoaches retrieves the coaches assigned to a project
func (s *ProjectService) ListCoaches(projectID string) ([]models.CoachAssignment, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(ErrNotFound, "project %s does not exist", projectID)
	}
	return s.coachRepo.FindByProjectID(projectID)
}
