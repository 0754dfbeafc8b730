package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/models"
	"github.com/osoc-staffing/services"
)

// ContractController handles the contract status workflow endpoint
type ContractController struct {
	contractService *services.ContractService
}

// NewContractController creates a new contract controller
func NewContractController() *ContractController {
	return &ContractController{
		contractService: services.NewContractService(),
	}
}

// RegisterRoutes registers contract routes
func (c *ContractController) RegisterRoutes(router *gin.RouterGroup) {
	contracts := router.Group("/contracts")
	{
		contracts.PUT("/:id/status", c.UpdateStatus)
	}
}

// UpdateStatus moves a contract through its workflow
func (c *ContractController) UpdateStatus(ctx *gin.Context) {
	callerIDValue, _ := ctx.Get("userId")
	callerID := callerIDValue.(string)

	var request dto.UpdateContractStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := c.contractService.UpdateStatus(callerID, ctx.Param("id"), models.ContractStatus(request.Status))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   contract,
	})
}
