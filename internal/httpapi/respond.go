package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/gin-gonic/gin"
)

const (
	errorCodeKey = "errorCode"

	codeInvalidRequest = "INVALID_REQUEST"
	codeInternal       = string(app.ErrInternalError)
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.Set(errorCodeKey, code)
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeError maps a use-case error onto an HTTP status. Uncoded errors are
// reported as 500 without leaking their text.
func writeError(c *gin.Context, err error) {
	code, ok := app.CodeOf(err)
	if !ok || code == app.ErrInternalError {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, codeInternal, "Unexpected server error")
		return
	}
	respondError(c, statusFor(code), string(code), messageOf(err))
}

func statusFor(code app.ErrorCode) int {
	switch code {
	case app.ErrFeatureLocked:
		return http.StatusForbidden
	case app.ErrNotFound:
		return http.StatusNotFound
	case app.ErrSessionClosed:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// messageOf strips the "CODE: " prefix typed errors carry.
func messageOf(err error) string {
	var coded app.CodedError
	if !errors.As(err, &coded) {
		return err.Error()
	}
	return strings.TrimPrefix(coded.Error(), string(coded.ErrorCode())+": ")
}
