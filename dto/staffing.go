package dto

// AssignStudentRequest represents the payload for putting a student on a role
type AssignStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	RoleName  string `json:"roleName" binding:"required"`
}

// ReassignStudentRequest represents the payload for moving a student to
// another role on the same project
type ReassignStudentRequest struct {
	RoleName string `json:"roleName" binding:"required"`
}

// CreateRoleSlotRequest represents the operator payload for adding a role
// slot to a project
type CreateRoleSlotRequest struct {
	RoleName string `json:"roleName" binding:"required"`
}

// UpdateSlotRequest represents the payload for changing a slot's capacity
type UpdateSlotRequest struct {
	Positions int `json:"positions" binding:"required"`
}

// FreeSpotsResponse reports the open positions for one role on a project
type FreeSpotsResponse struct {
	RoleID string `json:"roleId"`
	Count  int    `json:"count"`
}

// SlotResponse represents one project role slot with its role resolved
type SlotResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	RoleID    string `json:"roleId"`
	RoleName  string `json:"roleName"`
	Positions int    `json:"positions"`
	Free      int    `json:"free"`
}

// UpdateContractStatusRequest represents the payload for a contract
// status transition
type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
