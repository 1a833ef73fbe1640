package models

type ErrorResponse struct {
	StatusCode int               `json:"status_code"`
	Error      string            `json:"error"`
	Errors     map[string]string `json:"errors,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Error:      message,
	}
}

func NewValidationResponse(statusCode int, message string, errors map[string]string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Error:      message,
		Errors:     errors,
	}
}
