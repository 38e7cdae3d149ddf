package response

import (
	"errors"
	"net/http"

	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope returned to clients: a machine-readable
// tag plus free-text detail. Success payloads are written bare (arrays and
// objects as-is) so the frontend consumes them without unwrapping.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// OK sends a 200 response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Relay sends an upstream response verbatim: status code and already-parsed
// JSON body. Used by the proxy handlers.
func Relay(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500 with a generic body.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			Error:  appErr.Kind,
			Detail: appErr.Detail,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error:  "internal_error",
		Detail: "internal server error",
	})
}
