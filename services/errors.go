package services

import "net/http"

// ServiceError carries the HTTP status a failed operation should map to.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Status: http.StatusNotFound, Message: message}
}

func Forbidden(message string) *ServiceError {
	return &ServiceError{Status: http.StatusForbidden, Message: message}
}

func Conflict(message string) *ServiceError {
	return &ServiceError{Status: http.StatusConflict, Message: message}
}

func Invalid(message string) *ServiceError {
	return &ServiceError{Status: http.StatusBadRequest, Message: message}
}

func Unavailable(message string) *ServiceError {
	return &ServiceError{Status: http.StatusServiceUnavailable, Message: message}
}
