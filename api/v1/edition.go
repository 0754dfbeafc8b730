package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/services"
)

// EditionController handles the recruitment edition endpoints
type EditionController struct {
	editionService *services.EditionService
}

// NewEditionController creates a new edition controller
func NewEditionController() *EditionController {
	return &EditionController{
		editionService: services.NewEditionService(),
	}
}

// RegisterRoutes registers edition routes
func (c *EditionController) RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup) {
	editions := router.Group("/editions")
	{
		editions.GET("", c.ListEditions)
		editions.GET("/current", c.GetCurrentEdition)
	}

	adminEditions := admin.Group("/editions")
	{
		adminEditions.POST("", c.CreateEdition)
		adminEditions.PUT("/:id/current", c.SetCurrentEdition)
	}
}

// ListEditions retrieves all editions
func (c *EditionController) ListEditions(ctx *gin.Context) {
	editions, err := c.editionService.ListEditions()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   editions,
	})
}

// GetCurrentEdition retrieves the edition marked as current
func (c *EditionController) GetCurrentEdition(ctx *gin.Context) {
	edition, err := c.editionService.CurrentEdition()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   edition,
	})
}

// CreateEdition creates a new edition (admin only)
func (c *EditionController) CreateEdition(ctx *gin.Context) {
	var request dto.CreateEditionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	edition := models.Edition{
		Name: request.Name,
		Year: request.Year,
	}

	created, err := c.editionService.CreateEdition(edition)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// SetCurrentEdition marks an edition as the current one (admin only)
func (c *EditionController) SetCurrentEdition(ctx *gin.Context) {
	if err := c.editionService.SetCurrentEdition(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}
