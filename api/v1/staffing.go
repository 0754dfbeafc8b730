package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/services"
)

// StaffingController handles the student and coach allocation endpoints
type StaffingController struct {
	staffingService *services.StaffingService
}

// NewStaffingController creates a new staffing controller
func NewStaffingController() *StaffingController {
	return &StaffingController{
		staffingService: services.NewStaffingService(),
	}
}

// RegisterRoutes registers staffing routes on a project. Slot creation
// is the operator path and lives on the admin group.
func (c *StaffingController) RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("/:id/students", c.AssignStudent)
		projects.PUT("/:id/students/:studentId", c.ReassignStudent)
		projects.DELETE("/:id/students/:studentId", c.UnassignStudent)
		projects.POST("/:id/coaches/:coachId", c.AssignCoach)
		projects.DELETE("/:id/coaches/:coachId", c.UnassignCoach)
		projects.GET("/:id/free-spots", c.GetFreeSpots)
	}

	adminProjects := admin.Group("/projects")
	{
		adminProjects.POST("/:id/slots", c.CreateRoleSlot)
	}
}

// AssignStudent puts a student on a role slot of a project
func (c *StaffingController) AssignStudent(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")

	var request dto.AssignStudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := c.staffingService.AssignStudent(callerID, projectID, request.StudentID, request.RoleName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   contract,
	})
}

// ReassignStudent moves a student's contract to another role on the project
func (c *StaffingController) ReassignStudent(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")
	studentID := ctx.Param("studentId")

	var request dto.ReassignStudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := c.staffingService.ReassignStudent(callerID, projectID, studentID, request.RoleName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   contract,
	})
}

// UnassignStudent revokes a student's contract on a project
func (c *StaffingController) UnassignStudent(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")
	studentID := ctx.Param("studentId")

	if err := c.staffingService.UnassignStudent(callerID, projectID, studentID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// AssignCoach attaches a coach to a project
func (c *StaffingController) AssignCoach(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")
	coachID := ctx.Param("coachId")

	assignment, err := c.staffingService.AssignCoach(callerID, projectID, coachID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   assignment,
	})
}

// UnassignCoach detaches a coach from a project
func (c *StaffingController) UnassignCoach(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")
	coachID := ctx.Param("coachId")

	if err := c.staffingService.UnassignCoach(callerID, projectID, coachID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// GetFreeSpots reports open positions for a role on a project. The role
// name is passed as a query parameter.
func (c *StaffingController) GetFreeSpots(ctx *gin.Context) {
	projectID := ctx.Param("id")
	roleName := ctx.Query("role")
	if roleName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "role query parameter is required"})
		return
	}

	response, err := c.staffingService.GetFreeSpotsFor(roleName, projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateRoleSlot is the operator endpoint for adding a role slot to a project
func (c *StaffingController) CreateRoleSlot(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)
	projectID := ctx.Param("id")

	var request dto.CreateRoleSlotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.staffingService.CreateRoleSlotFor(callerID, projectID, request.RoleName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}
