package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrParse         = errors.New("markdown parsing failed")
	ErrPack          = errors.New("DOCX packaging failed")

	// Title validation errors.
	ErrTitleTooLong = errors.New("title exceeds maximum length")
)
