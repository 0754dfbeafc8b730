package dto

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PartnerName string `json:"partnerName"`
	EditionID   string `json:"editionId"`
}

// CreateStudentRequest represents the request payload for registering a student
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// CreateEditionRequest represents the request payload for creating an edition
type CreateEditionRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}

// CreateRoleRequest represents the operator payload for defining a role type
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}
