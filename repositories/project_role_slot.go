package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// ProjectRoleSlotRepository handles database operations for project role slots
type ProjectRoleSlotRepository struct{}

// NewProjectRoleSlotRepository creates a new slot repository instance
func NewProjectRoleSlotRepository() *ProjectRoleSlotRepository {
	return &ProjectRoleSlotRepository{}
}

// FindByID retrieves a slot by its ID
func (r *ProjectRoleSlotRepository) FindByID(id string) (models.ProjectRoleSlot, error) {
	var slot models.ProjectRoleSlot
	result := database.DB.Preload("Role").First(&slot, "id = ?", id)
	return slot, result.Error
}

// FindByProjectID retrieves all slots for a project with their roles
func (r *ProjectRoleSlotRepository) FindByProjectID(projectID string) ([]models.ProjectRoleSlot, error) {
	var slots []models.ProjectRoleSlot
	result := database.DB.Preload("Role").Where("project_id = ?", projectID).Find(&slots)
	return slots, result.Error
}

// FindByProjectAndRoleName retrieves the slot binding a project to a role
// name, without creating anything
func (r *ProjectRoleSlotRepository) FindByProjectAndRoleName(tx *gorm.DB, projectID, roleName string) (models.ProjectRoleSlot, error) {
	var slot models.ProjectRoleSlot
	result := tx.Select("project_role_slots.*").
		Joins("JOIN roles ON roles.id = project_role_slots.role_id").
		Where("project_role_slots.project_id = ? AND roles.name = ?", projectID, roleName).
		First(&slot)
	return slot, result.Error
}

// FindOrCreate resolves the slot for (project, role), creating one with
// the given number of positions when none exists. Calling it twice for
// the same pair returns the same slot. The lookup takes a row-level
// lock, so concurrent capacity checks against the slot serialize.
func (r *ProjectRoleSlotRepository) FindOrCreate(tx *gorm.DB, projectID, roleID string, positions int) (models.ProjectRoleSlot, error) {
	var slot models.ProjectRoleSlot
	result := forUpdate(tx).Where("project_id = ? AND role_id = ?", projectID, roleID).First(&slot)
	if result.Error == nil {
		return slot, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return slot, result.Error
	}
	// Locking a row that does not exist yet locks nothing, so two
	// concurrent first uses of a role on the same project could both
	// reach the create. Serialize lazy creation on the project row and
	// look again; the unique (project, role) index backs this up at the
	// schema level.
	var project models.Project
	if err := forUpdate(tx).First(&project, "id = ?", projectID).Error; err != nil {
		return slot, err
	}
	result = forUpdate(tx).Where("project_id = ? AND role_id = ?", projectID, roleID).First(&slot)
	if result.Error == nil {
		return slot, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return slot, result.Error
	}
	slot = models.ProjectRoleSlot{
		ProjectID: projectID,
		RoleID:    roleID,
		Positions: positions,
	}
	if err := tx.Create(&slot).Error; err != nil {
		return slot, err
	}
	return slot, nil
}

// FreeCapacity returns positions minus the number of non-cancelled
// contracts bound to the slot. Cancelled contracts release their seat.
func (r *ProjectRoleSlotRepository) FreeCapacity(tx *gorm.DB, slot models.ProjectRoleSlot) (int, error) {
	var taken int64
	result := tx.Model(&models.Contract{}).
		Where("slot_id = ? AND status <> ?", slot.ID, models.ContractStatusCancelled).
		Count(&taken)
	if result.Error != nil {
		return 0, result.Error
	}
	return slot.Positions - int(taken), nil
}

// UpdatePositions changes the capacity of a slot
func (r *ProjectRoleSlotRepository) UpdatePositions(id string, positions int) error {
	result := database.DB.Model(&models.ProjectRoleSlot{}).
		Where("id = ?", id).
		Update("positions", positions)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a slot from the database
func (r *ProjectRoleSlotRepository) Delete(id string) error {
	result := database.DB.Delete(&models.ProjectRoleSlot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
