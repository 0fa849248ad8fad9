package api

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Message   string                 `json:"message" example:"something went wrong"`
	Details   map[string]interface{} `json:"details"`
	ErrorType string                 `json:"error_type" example:"booking_api_error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

func NewError(message, errorType string, details map[string]interface{}) ErrorResponse {
	if details == nil {
		details = map[string]interface{}{}
	}
	return ErrorResponse{Message: message, Details: details, ErrorType: errorType}
}
