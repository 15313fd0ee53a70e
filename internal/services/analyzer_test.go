package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestResumeAnalyzer_SendsRoleSpecificPrompts(t *testing.T) {
	gen := &fakeGenerator{response: "model says hi"}
	a := NewResumeAnalyzer(gen, 0)
	text := "Jane Doe, Go developer"

	got, err := a.AnalyzeForCandidate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "model says hi", got)

	_, err = a.AnalyzeForHR(context.Background(), text)
	require.NoError(t, err)

	prompts := gen.calls()
	require.Len(t, prompts, 2)
	assert.NotEqual(t, prompts[0], prompts[1])
	assert.Equal(t, NewPromptBuilder().BuildCandidatePrompt(text), prompts[0])
	assert.Equal(t, NewPromptBuilder().BuildHRPrompt(text), prompts[1])
}

func TestResumeAnalyzer_ResponseUnmodified(t *testing.T) {
	gen := &fakeGenerator{response: "\n  **Summary**\n- a\n"}
	a := NewResumeAnalyzer(gen, 0)

	got, err := a.AnalyzeForHR(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "\n  **Summary**\n- a\n", got)
}

func TestResumeAnalyzer_WrapsGeneratorError(t *testing.T) {
	cause := errors.New("quota exceeded")
	a := NewResumeAnalyzer(&fakeGenerator{err: cause}, 0)

	_, err := a.AnalyzeForCandidate(context.Background(), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestResumeAnalyzer_AnalyzeByRole(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	a := NewResumeAnalyzer(gen, 0)

	_, err := a.Analyze(context.Background(), models.RoleHR, "cv")
	require.NoError(t, err)
	require.Len(t, gen.calls(), 1)
	assert.Equal(t, NewPromptBuilder().BuildHRPrompt("cv"), gen.calls()[0])

	_, err = a.Analyze(context.Background(), models.Role("boss"), "cv")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRole)
	assert.Len(t, gen.calls(), 1)
}

type deadlineGenerator struct {
	deadline time.Time
	ok       bool
}

func (d *deadlineGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	d.deadline, d.ok = ctx.Deadline()
	return "ok", nil
}

func TestResumeAnalyzer_AppliesTimeout(t *testing.T) {
	gen := &deadlineGenerator{}
	a := NewResumeAnalyzer(gen, time.Minute)

	_, err := a.AnalyzeForHR(context.Background(), "text")
	require.NoError(t, err)
	assert.True(t, gen.ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), gen.deadline, 5*time.Second)
}

func TestResumeAnalyzer_NoTimeoutKeepsCallerContext(t *testing.T) {
	gen := &deadlineGenerator{}
	a := NewResumeAnalyzer(gen, 0)

	_, err := a.AnalyzeForHR(context.Background(), "text")
	require.NoError(t, err)
	assert.False(t, gen.ok)
}
