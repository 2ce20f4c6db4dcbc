package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents a unique error code for categorizing errors
type ErrorCode string

const (
	// Repository state errors (1xxx)
	ErrCodeAlreadyInitialized ErrorCode = "CBRD1001"
	ErrCodeNotInitialized     ErrorCode = "CBRD1002"
	ErrCodeStateCorrupt       ErrorCode = "CBRD1003"

	// Branch errors (2xxx)
	ErrCodeBranchExists   ErrorCode = "CBRD2001"
	ErrCodeBranchNotFound ErrorCode = "CBRD2002"

	// Commit errors (3xxx)
	ErrCodeEmptyChangeSet ErrorCode = "CBRD3001"

	// Merge errors (4xxx)
	ErrCodeMergeConflict ErrorCode = "CBRD4001"

	// Validation errors (6xxx)
	ErrCodeInvalidInput ErrorCode = "CBRD6001"

	// System errors (9xxx)
	ErrCodeInternal ErrorCode = "CBRD9001"
	ErrCodeIO       ErrorCode = "CBRD9002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityError   ErrorSeverity = "ERROR"   // Operation failed
	SeverityWarning ErrorSeverity = "WARNING" // Operation succeeded with issues
	SeverityInfo    ErrorSeverity = "INFO"    // Informational, not an error
)

// AppError represents a structured application error with context
type AppError struct {
	Code        ErrorCode
	Message     string
	Severity    ErrorSeverity
	Context     map[string]interface{}
	Cause       error
	Timestamp   time.Time
	Suggestions []string
}

// Error implements the error interface
func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\nCaused by: %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return b.String()
}

// Unwrap returns the cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityError,
		Context:   make(map[string]interface{}),
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}

	appErr := New(code, message)
	appErr.Cause = err

	// If wrapping another AppError, inherit its context
	if ae, ok := err.(*AppError); ok {
		for k, v := range ae.Context {
			appErr.Context[k] = v
		}
	}

	return appErr
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity sets the error severity
func (e *AppError) WithSeverity(severity ErrorSeverity) *AppError {
	e.Severity = severity
	return e
}

// WithSuggestions adds recovery suggestions
func (e *AppError) WithSuggestions(suggestions ...string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors

// AlreadyInitializedError reports an init attempt on an existing repository
func AlreadyInitializedError(dir string) *AppError {
	return New(ErrCodeAlreadyInitialized, "Repository already initialized").
		WithContext("dir", dir)
}

// NotInitializedError reports an operation outside an initialized repository
func NotInitializedError(dir string) *AppError {
	return New(ErrCodeNotInitialized, "Not a codebird repository").
		WithContext("dir", dir).
		WithSuggestions("Run 'codebird init' to create a repository here")
}

// BranchExistsError reports a branch-create collision
func BranchExistsError(name string) *AppError {
	return New(ErrCodeBranchExists, fmt.Sprintf("Branch '%s' already exists", name)).
		WithContext("branch", name).
		WithSuggestions(
			fmt.Sprintf("Switch to it with 'codebird switch %s'", name),
			"List branches with 'codebird branches'",
		)
}

// BranchNotFoundError reports a lookup of an unknown branch
func BranchNotFoundError(name string) *AppError {
	return New(ErrCodeBranchNotFound, fmt.Sprintf("Branch '%s' does not exist", name)).
		WithContext("branch", name).
		WithSuggestions(
			"List branches with 'codebird branches'",
			fmt.Sprintf("Create it with 'codebird create %s'", name),
			"Check for typos in the branch name",
		)
}

// EmptyChangeSetError reports a commit attempt with no files
func EmptyChangeSetError() *AppError {
	return New(ErrCodeEmptyChangeSet, "No files modified to commit").
		WithSuggestions("Pass at least one file name to 'codebird commit'")
}

// MergeConflictError reports a blocked merge; files carries the tracked set
// needing manual resolution
func MergeConflictError(source, target string, files []string) *AppError {
	return New(ErrCodeMergeConflict,
		fmt.Sprintf("Conflict detected merging '%s' into '%s'", source, target)).
		WithContext("source", source).
		WithContext("target", target).
		WithContext("files", files).
		WithSuggestions("Resolve the listed files manually, then commit on the target branch")
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("Validation failed for %s: %s", field, reason)).
		WithContext("field", field).
		WithSeverity(SeverityWarning)
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
