package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rendering errors
	ErrRendererMissing ErrorCode = "RENDERER_MISSING"
	ErrStyleLoad       ErrorCode = "STYLE_LOAD"
	ErrTemplateExec    ErrorCode = "TEMPLATE_EXEC"
	ErrOutputFormat    ErrorCode = "OUTPUT_FORMAT"

	// Store errors
	ErrStoreKey    ErrorCode = "STORE_KEY"
	ErrStoreSchema ErrorCode = "STORE_SCHEMA"
	ErrStoreRead   ErrorCode = "STORE_READ"
	ErrStoreWrite  ErrorCode = "STORE_WRITE"
)

// Category groups error codes by the part of the pipeline that failed.
// The CLI turns categories into process exit statuses.
type Category int

const (
	CategoryNone Category = iota
	CategoryInternal
	CategoryUsage
	CategoryConfig
	CategoryRender
	CategoryStore
)

var categories = map[ErrorCode]Category{
	ErrUnknown:         CategoryInternal,
	ErrInternal:        CategoryInternal,
	ErrInvalidInput:    CategoryUsage,
	ErrNotFound:        CategoryUsage,
	ErrOutputFormat:    CategoryUsage,
	ErrConfigLoad:      CategoryConfig,
	ErrConfigParse:     CategoryConfig,
	ErrConfigValid:     CategoryConfig,
	ErrStyleLoad:       CategoryConfig,
	ErrRendererMissing: CategoryRender,
	ErrTemplateExec:    CategoryRender,
	ErrStoreKey:        CategoryStore,
	ErrStoreSchema:     CategoryStore,
	ErrStoreRead:       CategoryStore,
	ErrStoreWrite:      CategoryStore,
}

// exit statuses per category; 1 is left for errors without a code
var exitCodes = map[Category]int{
	CategoryNone:     0,
	CategoryInternal: 1,
	CategoryUsage:    2,
	CategoryConfig:   3,
	CategoryRender:   4,
	CategoryStore:    5,
}

// CategoryOf returns the category of the outermost TagError in err's chain.
// Plain errors are internal; a nil error has no category.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNone
	}
	if c, ok := categories[GetErrorCode(err)]; ok {
		return c
	}
	return CategoryInternal
}

// ExitCode maps err to a process exit status: 0 for nil, 2 usage,
// 3 configuration, 4 rendering, 5 store, 1 anything else.
func ExitCode(err error) int {
	return exitCodes[CategoryOf(err)]
}

// TagError represents a structured error with code and details
type TagError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TagError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TagError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TagError) Is(target error) bool {
	var targetErr *TagError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TagError with the given code and message
func New(code ErrorCode, message string) *TagError {
	return &TagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TagError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TagError {
	return &TagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TagError
func Wrap(err error, code ErrorCode, message string) *TagError {
	if err == nil {
		return nil
	}
	return &TagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TagError {
	if err == nil {
		return nil
	}
	return &TagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TagError) WithDetail(key string, value interface{}) *TagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TagError) WithDetails(details map[string]interface{}) *TagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TagError
func GetErrorCode(err error) ErrorCode {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TagError
func GetErrorDetails(err error) map[string]interface{} {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Details
	}
	return nil
}
