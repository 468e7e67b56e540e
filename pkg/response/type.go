package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from callers on 5xx responses.
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)
