package services

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCandidatePrompt creates the feedback prompt shown to the resume owner
func (pb *PromptBuilder) BuildCandidatePrompt(resumeText string) string {
	return fmt.Sprintf(`
Analyze this resume and provide:
- A brief summary of the candidate
- Key skills and technologies
- Suggestions for improvement
- Recommended job roles or industries

Resume:
%s
`, resumeText)
}

// BuildHRPrompt creates the short screening digest for recruiters
func (pb *PromptBuilder) BuildHRPrompt(resumeText string) string {
	return fmt.Sprintf(`
Analyze this resume and provide the key points for an HR professional in just 5 lines. Focus on:
- Key skills and technologies (keywords, short list)
- Education details (1 line summary)
- Red flags (if any, in 1 line)

Resume:
%s
`, resumeText)
}

func (pb *PromptBuilder) BuildForRole(role models.Role, resumeText string) (string, error) {
	switch role {
	case models.RoleCandidate:
		return pb.BuildCandidatePrompt(resumeText), nil
	case models.RoleHR:
		return pb.BuildHRPrompt(resumeText), nil
	default:
		return "", models.ErrInvalidRole
	}
}
