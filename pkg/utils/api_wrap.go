package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP statuses. Validation
// reasons come back verbatim; anything unrecognized is reported as a
// generic internal error so repository details never reach the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrBadDateFormat),
		errors.Is(err, ErrDateOutOfWindow),
		errors.Is(err, ErrInvalidEffort),
		errors.Is(err, ErrUnknownDimension),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrBadCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotAMember),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrInviteInvalid):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrJourneyNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
