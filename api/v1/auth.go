package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/dto"
	"github.com/osoc-staffing/services"
)

// Register creates a new login user
func Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.Register(request)
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   user,
	})
}

// Login authenticates a user and returns a JWT
func Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := services.Login(request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetCurrentUser returns the authenticated caller
func GetCurrentUser(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	user, err := services.GetUser(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.Password = ""
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}
