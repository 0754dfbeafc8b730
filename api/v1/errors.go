package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/services"
)

// statusFor maps a staffing error kind to an HTTP status code
func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.ErrRoleNotFound, services.ErrNotFound, services.ErrNotAssigned:
		return http.StatusNotFound
	case services.ErrCapacityExhausted, services.ErrAlreadyContracted,
		services.ErrAlreadyAssigned, services.ErrAmbiguous, services.ErrInvalidTransition:
		return http.StatusConflict
	case services.ErrArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a service error with the right status code
func respondError(ctx *gin.Context, err error) {
	kind := services.KindOf(err)
	status := statusFor(kind)
	body := gin.H{"status": "error", "message": err.Error()}
	if kind != "" {
		body["code"] = string(kind)
	}
	ctx.JSON(status, body)
}
