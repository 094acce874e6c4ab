package entity

import "errors"

// GenericErrorMessage is surfaced when a failure carries no usable detail.
const GenericErrorMessage = "An error occurred"

// APIError is the normalized shape every failure is reduced to before it
// reaches the view layer. Status is zero when no response was received.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds a normalized error, falling back to the generic
// message when the given one is empty.
func NewAPIError(message string, status int) *APIError {
	if message == "" {
		message = GenericErrorMessage
	}
	return &APIError{Message: message, Status: status}
}

// AsAPIError coerces any error into the normalized shape. Errors that are
// already normalized pass through unchanged.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewAPIError(err.Error(), 0)
}
