package models

import "errors"

var (
	ErrMissingFile   = errors.New("no resume file uploaded")
	ErrNotPDF        = errors.New("resume filename does not end with .pdf")
	ErrFileTooLarge  = errors.New("resume file exceeds the maximum upload size")
	ErrInvalidRole   = errors.New("role must be candidate or hr")
	ErrEmptyResponse = errors.New("no text content in response")
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")
)
