package services

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// ContractService exposes the contract ledger read views and the status
// workflow
type ContractService struct {
	contractRepo *repositories.ContractRepository
	projectRepo  *repositories.ProjectRepository
	studentRepo  *repositories.StudentRepository
}

// NewContractService creates a new contract service instance
func NewContractService() *ContractService {
	return &ContractService{
		contractRepo: repositories.NewContractRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		studentRepo:  repositories.NewStudentRepository(),
	}
}

// ContractsForProject retrieves all contracts on a project
func (s *ContractService) ContractsForProject(projectID string) ([]models.Contract, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(ErrNotFound, "project %s does not exist", projectID)
	}
	return s.contractRepo.FindByProjectID(projectID)
}

// ContractsForStudent retrieves all contracts held by a student
func (s *ContractService) ContractsForStudent(studentID string) ([]models.Contract, error) {
	exists, err := s.studentRepo.Exists(studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(ErrNotFound, "student %s does not exist", studentID)
	}
	return s.contractRepo.FindByStudentID(studentID)
}

// UpdateStatus moves a contract through its workflow. Transitions are
// validated against the closed table on models.ContractStatus; any
// contract not already cancelled may still be cancelled.
func (s *ContractService) UpdateStatus(callerID, contractID string, status models.ContractStatus) (models.Contract, error) {
	var contract models.Contract
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.First(&contract, "id = ?", contractID)
		if result.Error == gorm.ErrRecordNotFound {
			return newError(ErrNotFound, "contract %s does not exist", contractID)
		}
		if result.Error != nil {
			return result.Error
		}

		if !contract.Status.CanTransitionTo(status) {
			return newError(ErrInvalidTransition, "contract %s cannot move from %s to %s", contractID, contract.Status, status)
		}

		if err := s.contractRepo.UpdateStatus(tx, contractID, status, callerID); err != nil {
			return err
		}
		contract.Status = status
		contract.LastModifiedByID = callerID
		return nil
	})
	return contract, err
}
