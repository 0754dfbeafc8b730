package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/services"
)

// StudentController handles the thin student endpoints around the engine
type StudentController struct {
	studentService  *services.StudentService
	contractService *services.ContractService
}

// NewStudentController creates a new student controller
func NewStudentController() *StudentController {
	return &StudentController{
		studentService:  services.NewStudentService(),
		contractService: services.NewContractService(),
	}
}

// RegisterRoutes registers student routes
func (c *StudentController) RegisterRoutes(router *gin.RouterGroup) {
	students := router.Group("/students")
	{
		students.GET("", c.ListStudents)
		students.POST("", c.CreateStudent)
		students.GET("/:id", c.GetStudent)
		students.GET("/:id/contracts", c.ListContracts)
	}
}

// ListStudents retrieves all students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   students,
	})
}

// CreateStudent registers a new student
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var request dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := models.Student{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	}

	created, err := c.studentService.CreateStudent(student)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// GetStudent retrieves a student by id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   student,
	})
}

// ListContracts retrieves the contracts held by a student
func (c *StudentController) ListContracts(ctx *gin.Context) {
	contracts, err := c.contractService.ContractsForStudent(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   contracts,
	})
}
