package fleet

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why a draft was rejected
type ErrorCode string

const (
	CodeMissingName               ErrorCode = "MISSING_NAME"
	CodeMissingRegistrationCode   ErrorCode = "MISSING_REGISTRATION_CODE"
	CodeMissingHomePort           ErrorCode = "MISSING_HOME_PORT"
	CodeMissingPrimaryLead        ErrorCode = "MISSING_PRIMARY_LEAD"
	CodeDuplicateLeads            ErrorCode = "DUPLICATE_LEADS"
	CodeInvalidLeadCount          ErrorCode = "INVALID_LEAD_COUNT"
	CodeDuplicateRegistrationCode ErrorCode = "DUPLICATE_REGISTRATION_CODE"
	CodeInvalidStatus             ErrorCode = "INVALID_STATUS"
	CodeNotFound                  ErrorCode = "NOT_FOUND"
)

// ErrInvalidDraft is returned when a draft fails validation.
// It carries the first failing rule only.
type ErrInvalidDraft struct {
	Code   ErrorCode
	Field  string
	Reason string
}

func (e *ErrInvalidDraft) Error() string {
	return fmt.Sprintf("invalid vessel draft: %s - %s", e.Field, e.Reason)
}

// ErrVesselNotFound is returned when an id no longer exists in the registry
type ErrVesselNotFound struct {
	ID VesselID
}

func (e *ErrVesselNotFound) Error() string {
	return fmt.Sprintf("vessel not found: id=%s", e.ID)
}

// ErrFormClosed is returned when a form operation needs an open form
var ErrFormClosed = errors.New("vessel form is not open")

// CodeOf extracts the error code from a registry error, or "" for foreign errors
func CodeOf(err error) ErrorCode {
	var draftErr *ErrInvalidDraft
	if errors.As(err, &draftErr) {
		return draftErr.Code
	}
	var notFound *ErrVesselNotFound
	if errors.As(err, &notFound) {
		return CodeNotFound
	}
	return ""
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

func invalidDraft(code ErrorCode, field, reason string) *ErrInvalidDraft {
	return &ErrInvalidDraft{Code: code, Field: field, Reason: reason}
}
