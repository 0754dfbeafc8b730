package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for the global role catalog
type RoleRepository struct{}

// NewRoleRepository creates a new role repository instance
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{}
}

// FindAll retrieves all roles
func (r *RoleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	result := database.DB.Order("name asc").Find(&roles)
	return roles, result.Error
}

// FindByID retrieves a role by its ID
func (r *RoleRepository) FindByID(id string) (models.Role, error) {
	var role models.Role
	result := database.DB.First(&role, "id = ?", id)
	return role, result.Error
}

// FindByName retrieves a role by its exact name (case-sensitive)
func (r *RoleRepository) FindByName(tx *gorm.DB, name string) (models.Role, error) {
	var role models.Role
	result := tx.First(&role, "name = ?", name)
	return role, result.Error
}

// FindOrCreateByName looks up a role by name, creating it when absent.
// The catalog is append-only: this is the only path that grows it.
func (r *RoleRepository) FindOrCreateByName(tx *gorm.DB, name string) (models.Role, error) {
	var role models.Role
	result := tx.Where("name = ?", name).First(&role)
	if result.Error == nil {
		return role, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return role, result.Error
	}
	role = models.Role{Name: name}
	if err := tx.Create(&role).Error; err != nil {
		return role, err
	}
	return role, nil
}
