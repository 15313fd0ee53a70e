package models

import (
	"fmt"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleHR        Role = "hr"
)

// ParseRole maps a submitted form value to a Role. Matching is exact.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleCandidate, RoleHR:
		return Role(value), true
	default:
		return "", false
	}
}

type ResultKind string

const (
	KindSuccess           ResultKind = "success"
	KindValidationFailure ResultKind = "validation_failure"
	KindExtractionFailure ResultKind = "extraction_failure"
	KindAnalysisFailure   ResultKind = "analysis_failure"
	KindInvalidRole       ResultKind = "invalid_role"
	KindInternalError     ResultKind = "internal_error"
)

const (
	MessageInvalidUpload = "⚠️ Please upload a valid PDF file."
	MessageInvalidRole   = "⚠️ Invalid role selected."
	MessageInternalError = "⚠️ An internal error occurred while processing your resume."
)

// AnalysisResult is the outcome of one submission. Exactly one Kind applies;
// Text is only set for KindSuccess and Cause only for the failure kinds.
type AnalysisResult struct {
	ID    uuid.UUID
	Kind  ResultKind
	Role  string
	Text  string
	Cause error
}

func NewSuccess(role Role, text string) *AnalysisResult {
	return &AnalysisResult{ID: uuid.New(), Kind: KindSuccess, Role: string(role), Text: text}
}

func NewFailure(kind ResultKind, role string, cause error) *AnalysisResult {
	return &AnalysisResult{ID: uuid.New(), Kind: kind, Role: role, Cause: cause}
}

func (r *AnalysisResult) Succeeded() bool {
	return r.Kind == KindSuccess
}

// Message is the text shown to the user for this result.
func (r *AnalysisResult) Message() string {
	switch r.Kind {
	case KindSuccess:
		return r.Text
	case KindValidationFailure:
		return MessageInvalidUpload
	case KindInvalidRole:
		return MessageInvalidRole
	case KindExtractionFailure:
		return fmt.Sprintf("Error extracting text from PDF: %s", causeText(r.Cause))
	case KindAnalysisFailure:
		return fmt.Sprintf("⚠️ Error during analysis: %s", causeText(r.Cause))
	default:
		return MessageInternalError
	}
}

func causeText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
