package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "tredora.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message sends a plain confirmation body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		// Default to Internal Server Error if not an AppError
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// BindingError maps a gin binding failure to a 422 body.
func BindingError(c *gin.Context, err error) {
	Error(c, domainerrors.Unprocessable(err.Error()))
}
