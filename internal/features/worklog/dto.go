package worklog

const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeExternalAPIError = "EXTERNAL_API_ERROR"
	CodeNetworkError     = "NETWORK_ERROR"
	CodeParseError       = "PARSE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

type ErrorResponseDTO struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}
