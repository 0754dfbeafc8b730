package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/services"
)

// ProjectController handles the thin project endpoints around the engine
type ProjectController struct {
	projectService  *services.ProjectService
	contractService *services.ContractService
	roleService     *services.RoleService
}

// NewProjectController creates a new project controller
func NewProjectController() *ProjectController {
	return &ProjectController{
		projectService:  services.NewProjectService(),
		contractService: services.NewContractService(),
		roleService:     services.NewRoleService(),
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.GET("/:id", c.GetProject)
		projects.GET("/:id/contracts", c.ListContracts)
		projects.GET("/:id/coaches", c.ListCoaches)
		projects.GET("/:id/slots", c.ListSlots)
	}

	adminProjects := admin.Group("/projects")
	{
		adminProjects.POST("", c.CreateProject)
	}
}

// ListProjects retrieves the projects of an edition (current by default)
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	editionID := ctx.Query("editionId")

	projects, err := c.projectService.ListProjects(editionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject retrieves a project with its slots and coaches
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProjectDetail(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// ListContracts retrieves the contracts on a project
func (c *ProjectController) ListContracts(ctx *gin.Context) {
	contracts, err := c.contractService.ContractsForProject(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   contracts,
	})
}

// ListCoaches retrieves the coaches assigned to a project
func (c *ProjectController) ListCoaches(ctx *gin.Context) {
	coaches, err := c.projectService.ListCoaches(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   coaches,
	})
}

// ListSlots retrieves a project's role slots with free counts
func (c *ProjectController) ListSlots(ctx *gin.Context) {
	slots, err := c.roleService.ListProjectSlots(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   slots,
	})
}

// CreateProject creates a project inside an edition (admin only)
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var request dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		Name:        request.Name,
		Description: request.Description,
		PartnerName: request.PartnerName,
		EditionID:   request.EditionID,
	}

	created, err := c.projectService.CreateProject(project)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}
