package utils

import (
	"net/http"

	"hospital-reception-backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// ContextRequestID is the gin context key holding the current request id.
const ContextRequestID = "requestID"

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, withRequestID(c, gin.H{
		"success": false,
		"error":   message,
	}))
}

// AppErrorResponse sends the status and reason carried by a lookup outcome.
// Unknown errors become a 500 without leaking their text.
func AppErrorResponse(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.HTTPStatus, withRequestID(c, gin.H{
		"success": false,
		"error":   appErr.Message,
		"code":    appErr.Kind,
	}))
}

// withRequestID tags error bodies so a caller can quote the id found in the logs.
func withRequestID(c *gin.Context, body gin.H) gin.H {
	if id := c.GetString(ContextRequestID); id != "" {
		body["request_id"] = id
	}
	return body
}
