package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given document as the body.
func OK(c *gin.Context, doc any) {
	c.JSON(http.StatusOK, doc)
}

// ValidationFailed sends 400 with the human-readable validation messages.
func ValidationFailed(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, ErrResp{
		Error:   MessageValidationFailed,
		Details: details,
	})
}

// InternalError sends 500 with an opaque message. Internal detail never leaks here.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error: message,
	})
}
