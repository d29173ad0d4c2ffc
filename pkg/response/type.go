package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// ErrorCodeBadRequest is used for plain errors that carry no HTTPError.
	ErrorCodeBadRequest     = 1
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
