package services

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// StaffingService orchestrates student and coach allocation on projects.
// Every check-then-act sequence runs inside one store transaction with
// row-level locks, so two concurrent assignments can never both observe
// a free seat and both take it.
type StaffingService struct {
	roleRepo       *repositories.RoleRepository
	slotRepo       *repositories.ProjectRoleSlotRepository
	contractRepo   *repositories.ContractRepository
	coachRepo      *repositories.CoachAssignmentRepository
	evaluationRepo *repositories.EvaluationRepository
	projectRepo    *repositories.ProjectRepository
	studentRepo    *repositories.StudentRepository
	editionRepo    *repositories.EditionRepository
	userRepo       *repositories.UserRepository
}

// NewStaffingService creates a new staffing service instance
func NewStaffingService() *StaffingService {
	return &StaffingService{
		roleRepo:       repositories.NewRoleRepository(),
		slotRepo:       repositories.NewProjectRoleSlotRepository(),
		contractRepo:   repositories.NewContractRepository(),
		coachRepo:      repositories.NewCoachAssignmentRepository(),
		evaluationRepo: repositories.NewEvaluationRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		studentRepo:    repositories.NewStudentRepository(),
		editionRepo:    repositories.NewEditionRepository(),
		userRepo:       repositories.NewUserRepository(),
	}
}

// AssignStudent puts a student on a role slot of a project. The slot is
// created lazily with one position if the role exists but the project
// has not used it yet; a brand-new role name is rejected, defining role
// types is the operator path's job.
func (s *StaffingService) AssignStudent(callerID, projectID, studentID, roleName string) (models.Contract, error) {
	var contract models.Contract

	if err := s.requireProject(projectID); err != nil {
		return contract, err
	}
	if err := s.requireStudent(studentID); err != nil {
		return contract, err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		role, err := s.roleRepo.FindByName(tx, roleName)
		if err == gorm.ErrRecordNotFound {
			return newError(ErrRoleNotFound, "role %q does not exist", roleName)
		}
		if err != nil {
			return err
		}

		// Lock order: slot row first, then student row
		slot, err := s.slotRepo.FindOrCreate(tx, projectID, role.ID, 1)
		if err != nil {
			return err
		}
		if _, err := s.studentRepo.LockByID(tx, studentID); err != nil {
			return err
		}

		free, err := s.slotRepo.FreeCapacity(tx, slot)
		if err != nil {
			return err
		}
		if free <= 0 {
			return newError(ErrCapacityExhausted, "no free %q spots left on project %s", roleName, projectID)
		}

		// A student holds at most one active contract per edition,
		// regardless of project
		editionID, err := s.editionRepo.EditionOf(tx, projectID)
		if err != nil {
			return err
		}
		active, err := s.contractRepo.CountActiveInEdition(tx, studentID, editionID)
		if err != nil {
			return err
		}
		if active > 0 {
			return newError(ErrAlreadyContracted, "student %s already holds a contract in this edition", studentID)
		}

		contract, err = s.contractRepo.Create(tx, studentID, slot.ID, callerID, "")
		return err
	})
	return contract, err
}

// ReassignStudent moves a student's contract on a project to another
// role. The contract keeps its status; only the slot and the modifier
// change.
func (s *StaffingService) ReassignStudent(callerID, projectID, studentID, newRoleName string) (models.Contract, error) {
	var contract models.Contract

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		contracts, err := s.contractRepo.FindByProjectAndStudent(tx, projectID, studentID)
		if err != nil {
			return err
		}
		if len(contracts) == 0 {
			return newError(ErrNotAssigned, "student %s is not assigned to project %s", studentID, projectID)
		}
		if len(contracts) > 1 {
			return newError(ErrAmbiguous, "student %s holds %d contracts on project %s, expected exactly one", studentID, len(contracts), projectID)
		}
		contract = contracts[0]

		role, err := s.roleRepo.FindByName(tx, newRoleName)
		if err == gorm.ErrRecordNotFound {
			return newError(ErrRoleNotFound, "role %q does not exist", newRoleName)
		}
		if err != nil {
			return err
		}

		slot, err := s.slotRepo.FindOrCreate(tx, projectID, role.ID, 1)
		if err != nil {
			return err
		}
		if slot.ID == contract.SlotID {
			// Already on that role; the student's own contract occupies
			// the seat, so a capacity check would wrongly reject
			return nil
		}

		free, err := s.slotRepo.FreeCapacity(tx, slot)
		if err != nil {
			return err
		}
		if free <= 0 {
			return newError(ErrCapacityExhausted, "no free %q spots left on project %s", newRoleName, projectID)
		}

		if err := s.contractRepo.UpdateSlot(tx, contract.ID, slot.ID, callerID); err != nil {
			return err
		}
		contract.SlotID = slot.ID
		contract.LastModifiedByID = callerID
		return nil
	})
	return contract, err
}

// UnassignStudent revokes a student's contract on a project. Any final
// evaluation for the pair is demoted to non-final in the same
// transaction; if demotion fails the whole un-assignment rolls back
// rather than leaving an orphaned final decision.
func (s *StaffingService) UnassignStudent(callerID, projectID, studentID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		contracts, err := s.contractRepo.FindByProjectAndStudent(tx, projectID, studentID)
		if err != nil {
			return err
		}
		if len(contracts) == 0 {
			return newError(ErrNotAssigned, "student %s is not assigned to project %s", studentID, projectID)
		}
		if len(contracts) > 1 {
			return newError(ErrAmbiguous, "student %s holds %d contracts on project %s, expected exactly one", studentID, len(contracts), projectID)
		}

		evaluations, err := s.evaluationRepo.FindByStudentAndProject(tx, studentID, projectID)
		if err != nil {
			return err
		}
		for _, evaluation := range evaluations {
			if !evaluation.IsFinal {
				continue
			}
			if err := s.evaluationRepo.DemoteToNonFinal(tx, evaluation.ID); err != nil {
				return err
			}
		}

		_, err = s.contractRepo.Delete(tx, contracts[0].ID)
		return err
	})
}

// AssignCoach attaches a coach to a project. Uniqueness of the
// (coach, project) pair is the only constraint.
func (s *StaffingService) AssignCoach(callerID, projectID, coachID string) (models.CoachAssignment, error) {
	var assignment models.CoachAssignment

	exists, err := s.userRepo.Exists(coachID)
	if err != nil {
		return assignment, err
	}
	if !exists {
		return assignment, newError(ErrNotFound, "user %s does not exist", coachID)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// The project row lock serializes concurrent coach mutations
		if _, err := s.projectRepo.LockByID(tx, projectID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return newError(ErrNotFound, "project %s does not exist", projectID)
			}
			return err
		}

		assigned, err := s.coachRepo.Exists(tx, coachID, projectID)
		if err != nil {
			return err
		}
		if assigned {
			return newError(ErrAlreadyAssigned, "coach %s is already assigned to project %s", coachID, projectID)
		}

		assignment, err = s.coachRepo.Create(tx, coachID, projectID)
		return err
	})
	return assignment, err
}

// UnassignCoach detaches a coach from a project
func (s *StaffingService) UnassignCoach(callerID, projectID, coachID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.projectRepo.LockByID(tx, projectID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return newError(ErrNotFound, "project %s does not exist", projectID)
			}
			return err
		}

		assigned, err := s.coachRepo.Exists(tx, coachID, projectID)
		if err != nil {
			return err
		}
		if !assigned {
			return newError(ErrNotAssigned, "coach %s is not assigned to project %s", coachID, projectID)
		}

		return s.coachRepo.DeleteByUserAndProject(tx, coachID, projectID)
	})
}

// GetFreeSpotsFor reports how many positions for a role are still open
// on a project. A query never creates the slot; asking about a role the
// project does not carry is an argument error.
func (s *StaffingService) GetFreeSpotsFor(roleName, projectID string) (dto.FreeSpotsResponse, error) {
	var response dto.FreeSpotsResponse

	slot, err := s.slotRepo.FindByProjectAndRoleName(database.DB, projectID, roleName)
	if err == gorm.ErrRecordNotFound {
		return response, newError(ErrArgument, "project %s has no %q slot", projectID, roleName)
	}
	if err != nil {
		return response, err
	}

	free, err := s.slotRepo.FreeCapacity(database.DB, slot)
	if err == gorm.ErrRecordNotFound {
		// Slot vanished concurrently; stale reference
		return response, newError(ErrArgument, "slot for role %q on project %s is gone", roleName, projectID)
	}
	if err != nil {
		return response, err
	}

	response.RoleID = slot.RoleID
	response.Count = free
	return response, nil
}

// CreateRoleSlotFor is the operator path for defining a slot: the role
// must already exist in the catalog, and the slot starts with one
// position. Unlike assignment, this never creates a global role.
func (s *StaffingService) CreateRoleSlotFor(callerID, projectID, roleName string) (dto.FreeSpotsResponse, error) {
	var response dto.FreeSpotsResponse

	if err := s.requireProject(projectID); err != nil {
		return response, err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		role, err := s.roleRepo.FindByName(tx, roleName)
		if err == gorm.ErrRecordNotFound {
			return newError(ErrRoleNotFound, "role %q does not exist", roleName)
		}
		if err != nil {
			return err
		}

		slot, err := s.slotRepo.FindOrCreate(tx, projectID, role.ID, 1)
		if err != nil {
			return err
		}

		free, err := s.slotRepo.FreeCapacity(tx, slot)
		if err != nil {
			return err
		}

		response.RoleID = role.ID
		response.Count = free
		return nil
	})
	return response, err
}

// requireProject turns a missing project into a domain error instead of
// a foreign key violation from the store
func (s *StaffingService) requireProject(projectID string) error {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}
	if !exists {
		return newError(ErrNotFound, "project %s does not exist", projectID)
	}
	return nil
}

// requireStudent turns a missing student into a domain error
func (s *StaffingService) requireStudent(studentID string) error {
	exists, err := s.studentRepo.Exists(studentID)
	if err != nil {
		return err
	}
	if !exists {
		return newError(ErrNotFound, "student %s does not exist", studentID)
	}
	return nil
}
