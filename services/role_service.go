package services

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/repositories"
	"gorm.io/gorm"
)

// RoleService handles the global role catalog and operator-level slot
// maintenance
type RoleService struct {
	roleRepo    *repositories.RoleRepository
	slotRepo    *repositories.ProjectRoleSlotRepository
	projectRepo *repositories.ProjectRepository
}

// NewRoleService creates a new role service instance
func NewRoleService() *RoleService {
	return &RoleService{
		roleRepo:    repositories.NewRoleRepository(),
		slotRepo:    repositories.NewProjectRoleSlotRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListRoles retrieves the full role catalog
func (s *RoleService) ListRoles() ([]models.Role, error) {
	return s.roleRepo.FindAll()
}

// GetRole retrieves one role by id
func (s *RoleService) GetRole(id string) (models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return role, newError(ErrRoleNotFound, "role %s does not exist", id)
	}
	return role, err
}

// ResolveOrCreateRole is the operator path for defining a role type.
// Lookup is case-sensitive; the catalog only ever grows.
func (s *RoleService) ResolveOrCreateRole(name string) (models.Role, error) {
	if name == "" {
		return models.Role{}, newError(ErrArgument, "role name must not be empty")
	}
	return s.roleRepo.FindOrCreateByName(database.DB, name)
}

// ListProjectSlots retrieves a project's slots with role names and the
// number of spots still open on each
func (s *RoleService) ListProjectSlots(projectID string) ([]dto.SlotResponse, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(ErrNotFound, "project %s does not exist", projectID)
	}

	slots, err := s.slotRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		free, err := s.slotRepo.FreeCapacity(database.DB, slot)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.SlotResponse{
			ID:        slot.ID,
			ProjectID: slot.ProjectID,
			RoleID:    slot.RoleID,
			RoleName:  slot.Role.Name,
			Positions: slot.Positions,
			Free:      free,
		})
	}
	return responses, nil
}

// UpdateSlotPositions changes the capacity of a slot. Shrinking below
// the number of live contracts is an operator decision the engine does
// not police; the allocation paths only guarantee no new over-allocation.
func (s *RoleService) UpdateSlotPositions(slotID string, positions int) error {
	if positions < 1 {
		return newError(ErrArgument, "positions must be at least 1, got %d", positions)
	}
	err := s.slotRepo.UpdatePositions(slotID, positions)
	if err == gorm.ErrRecordNotFound {
		return newError(ErrNotFound, "slot %s does not exist", slotID)
	}
	return err
}

// DeleteSlot removes a slot
func (s *RoleService) DeleteSlot(slotID string) error {
	err := s.slotRepo.Delete(slotID)
	if err == gorm.ErrRecordNotFound {
		return newError(ErrNotFound, "slot %s does not exist", slotID)
	}
	return err
}
