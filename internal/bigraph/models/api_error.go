package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================
// API Errors
// ============================================================

type ErrorCode string

const (
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeInvalidJSON         ErrorCode = "invalid_json"
	ErrorCodeInvalidQuery        ErrorCode = "invalid_query"
	ErrorCodeInvalidFloor        ErrorCode = "invalid_floor"
	ErrorCodeMissingCoordinate   ErrorCode = "missing_coordinate"
	ErrorCodeEmptyCandidateSet   ErrorCode = "empty_candidate_set"
	ErrorCodeDuplicateNode       ErrorCode = "duplicate_node"
	ErrorCodeMissingID           ErrorCode = "missing_id"
)

type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	StatusCode int       `json:"-"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details any, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}

// APIErrorFrom переводит ошибку сборки в тело ответа.
func APIErrorFrom(err error) APIError {
	msg := err.Error()

	switch {
	case errors.Is(err, ErrMissingCoordinate):
		return NewAPIError(ErrorCodeMissingCoordinate, msg, nil, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrEmptyCandidateSet):
		return NewAPIError(ErrorCodeEmptyCandidateSet, msg, nil, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrDuplicateNode):
		return NewAPIError(ErrorCodeDuplicateNode, msg, nil, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrMissingID):
		return NewAPIError(ErrorCodeMissingID, msg, nil, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidFloor):
		return NewAPIError(ErrorCodeInvalidFloor, msg, nil, http.StatusBadRequest)
	}
	return NewAPIError(ErrorCodeInternalServerError, msg, nil, http.StatusInternalServerError)
}
