package app

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
)

type ErrorCode string

const (
	ErrUnknownChallenge  ErrorCode = "UNKNOWN_CHALLENGE"
	ErrUnknownUrgency    ErrorCode = "UNKNOWN_URGENCY"
	ErrUnknownScope      ErrorCode = "UNKNOWN_SCOPE"
	ErrUnknownQuestion   ErrorCode = "UNKNOWN_QUESTION"
	ErrUnknownOption     ErrorCode = "UNKNOWN_OPTION"
	ErrUnknownTool       ErrorCode = "UNKNOWN_TOOL"
	ErrInvalidPlan       ErrorCode = "INVALID_PLAN"
	ErrSessionClosed     ErrorCode = "SESSION_CLOSED"
	ErrNoActiveSession   ErrorCode = "NO_ACTIVE_SESSION"
	ErrIncompleteSession ErrorCode = "INCOMPLETE_SESSION"
	ErrFeatureLocked     ErrorCode = "FEATURE_LOCKED"
	ErrEmptyMessage      ErrorCode = "EMPTY_MESSAGE"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrInternalError     ErrorCode = "INTERNAL_ERROR"
)

// CodedError is implemented by every typed use-case error.
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

// CodeOf returns the code of the first CodedError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return "", false
}

// DiagnoseError reports a request the diagnosis engine cannot score.
type DiagnoseError struct {
	Code    ErrorCode
	Message string
}

func (e *DiagnoseError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *DiagnoseError) ErrorCode() ErrorCode { return e.Code }

// WizardError reports an invalid wizard transition or answer.
type WizardError struct {
	Code    ErrorCode
	Message string
}

func (e *WizardError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *WizardError) ErrorCode() ErrorCode { return e.Code }

// FeatureLockedError is returned when the user's plan lacks a feature.
type FeatureLockedError struct {
	Feature  domain.Feature
	Plan     domain.Plan
	Required domain.Plan
}

func (e *FeatureLockedError) Error() string {
	return fmt.Sprintf("%s: %s requires the %s plan (current plan: %s)", ErrFeatureLocked, e.Feature, e.Required, e.Plan)
}

func (e *FeatureLockedError) ErrorCode() ErrorCode { return ErrFeatureLocked }

// NotFoundError reports a missing stored entity such as a history record.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %q not found", ErrNotFound, e.Entity, e.ID)
}

func (e *NotFoundError) ErrorCode() ErrorCode { return ErrNotFound }

// AdvisorError reports an advisor request that cannot be answered.
type AdvisorError struct {
	Code    ErrorCode
	Message string
}

func (e *AdvisorError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *AdvisorError) ErrorCode() ErrorCode { return e.Code }
