package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// fromDomainError translates service error codes to HTTP responses.
// Unknown codes fall through to a 500 with the supplied fallback code.
func fromDomainError(err error, fallbackCode string) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "invalid_credentials"), apperrors.IsCode(err, "invalid_token"):
		return NewHTTPError(http.StatusUnauthorized, apperrors.CodeOf(err), errMessage(err), err)
	case apperrors.IsCode(err, "forbidden"):
		return NewHTTPError(http.StatusForbidden, "forbidden", errMessage(err), err)
	case apperrors.IsCode(err, "not_found"), apperrors.IsCode(err, "user_not_found"):
		return NewHTTPError(http.StatusNotFound, apperrors.CodeOf(err), errMessage(err), err)
	case apperrors.IsCode(err, "email_exists"):
		return NewHTTPError(http.StatusConflict, "email_exists", errMessage(err), err)
	case apperrors.IsCode(err, "provider_error"), apperrors.IsCode(err, "llm_error"):
		return NewHTTPError(http.StatusBadGateway, apperrors.CodeOf(err), errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
