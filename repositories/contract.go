package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// ContractRepository handles database operations for contracts
type ContractRepository struct{}

// NewContractRepository creates a new contract repository instance
func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

// activeContracts scopes a query to contracts still occupying a seat
func activeContracts(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Contract{}).Where("contracts.status <> ?", models.ContractStatusCancelled)
}

// FindByID retrieves a contract by its ID
func (r *ContractRepository) FindByID(id string) (models.Contract, error) {
	var contract models.Contract
	result := database.DB.Preload("Slot").Preload("Slot.Role").First(&contract, "id = ?", id)
	return contract, result.Error
}

// FindByProjectID retrieves all contracts on a project with their slots,
// roles and students resolved
func (r *ContractRepository) FindByProjectID(projectID string) ([]models.Contract, error) {
	var contracts []models.Contract
	result := database.DB.Select("contracts.*").
		Joins("JOIN project_role_slots ON project_role_slots.id = contracts.slot_id").
		Where("project_role_slots.project_id = ?", projectID).
		Preload("Student").Preload("Slot").Preload("Slot.Role").
		Find(&contracts)
	return contracts, result.Error
}

// FindByStudentID retrieves all contracts held by a student
func (r *ContractRepository) FindByStudentID(studentID string) ([]models.Contract, error) {
	var contracts []models.Contract
	result := database.DB.Where("student_id = ?", studentID).
		Preload("Slot").Preload("Slot.Role").Preload("Slot.Project").
		Find(&contracts)
	return contracts, result.Error
}

// FindByProjectAndStudent retrieves every active contract binding a
// student to a project, under a row-level lock. Cancelled contracts are
// history, not matches. Callers decide what more than one match means;
// this query never picks one.
func (r *ContractRepository) FindByProjectAndStudent(tx *gorm.DB, projectID, studentID string) ([]models.Contract, error) {
	var contracts []models.Contract
	result := activeContracts(forUpdate(tx)).Select("contracts.*").
		Joins("JOIN project_role_slots ON project_role_slots.id = contracts.slot_id").
		Where("project_role_slots.project_id = ? AND contracts.student_id = ?", projectID, studentID).
		Find(&contracts)
	return contracts, result.Error
}

// CountActiveInEdition counts a student's non-cancelled contracts within
// one edition, across all of its projects
func (r *ContractRepository) CountActiveInEdition(tx *gorm.DB, studentID, editionID string) (int64, error) {
	var count int64
	result := activeContracts(tx).
		Joins("JOIN project_role_slots ON project_role_slots.id = contracts.slot_id").
		Joins("JOIN projects ON projects.id = project_role_slots.project_id").
		Where("contracts.student_id = ? AND projects.edition_id = ?", studentID, editionID).
		Count(&count)
	return count, result.Error
}

// Create inserts a new contract with status DRAFT
func (r *ContractRepository) Create(tx *gorm.DB, studentID, slotID, creatorID, note string) (models.Contract, error) {
	contract := models.Contract{
		StudentID:        studentID,
		SlotID:           slotID,
		Status:           models.ContractStatusDraft,
		CreatedByID:      creatorID,
		LastModifiedByID: creatorID,
		Note:             note,
	}
	result := tx.Create(&contract)
	return contract, result.Error
}

// UpdateSlot moves a contract to another slot, recording the modifier.
// The status is left untouched.
func (r *ContractRepository) UpdateSlot(tx *gorm.DB, id, slotID, modifierID string) error {
	result := tx.Model(&models.Contract{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"slot_id":             slotID,
			"last_modified_by_id": modifierID,
		})
	return result.Error
}

// UpdateStatus sets a contract's status, recording the modifier
func (r *ContractRepository) UpdateStatus(tx *gorm.DB, id string, status models.ContractStatus, modifierID string) error {
	result := tx.Model(&models.Contract{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              status,
			"last_modified_by_id": modifierID,
		})
	return result.Error
}

// Delete removes a contract and returns the removed record for audit
func (r *ContractRepository) Delete(tx *gorm.DB, id string) (models.Contract, error) {
	var contract models.Contract
	if err := tx.First(&contract, "id = ?", id).Error; err != nil {
		return contract, err
	}
	result := tx.Delete(&models.Contract{}, "id = ?", id)
	return contract, result.Error
}
