package repositories

import (
	"github.com/osoc-staffing/database"
	"github.com/osoc-staffing/models"
)

// UserRepository handles database operations for login users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// Exists checks if a user exists
func (r *UserRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
