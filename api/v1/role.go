package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/services"
)

// RoleController handles the role catalog and slot maintenance endpoints
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new role controller
func NewRoleController() *RoleController {
	return &RoleController{
		roleService: services.NewRoleService(),
	}
}

// RegisterRoutes registers role routes
func (c *RoleController) RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup) {
	roles := router.Group("/roles")
	{
		roles.GET("", c.ListRoles)
		roles.GET("/:id", c.GetRole)
	}

	adminRoles := admin.Group("/roles")
	{
		adminRoles.POST("", c.CreateRole)
	}

	adminSlots := admin.Group("/slots")
	{
		adminSlots.PUT("/:id", c.UpdateSlot)
		adminSlots.DELETE("/:id", c.DeleteSlot)
	}
}

// ListRoles retrieves the role catalog
func (c *RoleController) ListRoles(ctx *gin.Context) {
	roles, err := c.roleService.ListRoles()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   roles,
	})
}

// GetRole retrieves one role by id
func (c *RoleController) GetRole(ctx *gin.Context) {
	role, err := c.roleService.GetRole(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   role,
	})
}

// CreateRole defines a role type in the global catalog (admin only)
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var request dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := c.roleService.ResolveOrCreateRole(request.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   role,
	})
}

// UpdateSlot changes a slot's capacity (admin only)
func (c *RoleController) UpdateSlot(ctx *gin.Context) {
	var request dto.UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.roleService.UpdateSlotPositions(ctx.Param("id"), request.Positions); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// DeleteSlot removes a slot (admin only)
func (c *RoleController) DeleteSlot(ctx *gin.Context) {
	if err := c.roleService.DeleteSlot(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}
