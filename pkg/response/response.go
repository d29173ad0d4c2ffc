package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "freezer-inventory/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders err. An *errors.HTTPError anywhere in the chain decides the
// status and code; any other error is a 400 with the error text.
func Error(c *gin.Context, err error) {
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		if he.StatusCode >= http.StatusInternalServerError {
			InternalError(c, err)
			return
		}
		c.JSON(he.StatusCode, Resp{
			ErrorCode: he.Code,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
	})
}

// ValidationError sends 400 with per-field messages.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   message,
		Errors:    fields,
	})
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
