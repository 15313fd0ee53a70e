package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		value string
		want  Role
		ok    bool
	}{
		{"candidate", RoleCandidate, true},
		{"hr", RoleHR, true},
		{"HR", "", false},
		{"xyz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := ParseRole(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalysisResult_Message(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name   string
		result *AnalysisResult
		want   string
	}{
		{"success is verbatim", NewSuccess(RoleHR, "  model text\n"), "  model text\n"},
		{"validation", NewFailure(KindValidationFailure, "", ErrNotPDF), MessageInvalidUpload},
		{"invalid role", NewFailure(KindInvalidRole, "xyz", ErrInvalidRole), MessageInvalidRole},
		{"extraction", NewFailure(KindExtractionFailure, "hr", cause), "Error extracting text from PDF: boom"},
		{"analysis", NewFailure(KindAnalysisFailure, "hr", cause), "⚠️ Error during analysis: boom"},
		{"internal", NewFailure(KindInternalError, "hr", cause), MessageInternalError},
		{"nil cause", NewFailure(KindAnalysisFailure, "hr", nil), "⚠️ Error during analysis: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Message())
		})
	}
}

func TestAnalysisResult_Succeeded(t *testing.T) {
	assert.True(t, NewSuccess(RoleCandidate, "ok").Succeeded())
	assert.False(t, NewFailure(KindExtractionFailure, "candidate", errors.New("x")).Succeeded())
}
