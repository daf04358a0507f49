package errors

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// ErrorType groups errors by the layer that produced them
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeFileSystem
	ErrorTypeParsing
	ErrorTypeSerialization
	ErrorTypeConfiguration
	ErrorTypeNotFound
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:    "VALIDATION",
	ErrorTypeFileSystem:    "FILESYSTEM",
	ErrorTypeParsing:       "PARSING",
	ErrorTypeSerialization: "SERIALIZATION",
	ErrorTypeConfiguration: "CONFIGURATION",
	ErrorTypeNotFound:      "NOT_FOUND",
}

func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "UNKNOWN"
}

// Error codes
const (
	CodeInputNotFound      = "INPUT_NOT_FOUND"
	CodeInputUnreadable    = "INPUT_UNREADABLE"
	CodeMetadataExtraction = "METADATA_EXTRACTION_FAILED"
	CodeSerialization      = "SERIALIZATION_FAILED"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeInvalidReport      = "INVALID_REPORT"
)

// Sentinels for errors.Is; matching compares Type and Code only.
var (
	ErrInputNotFound      = &AnalyzerError{Type: ErrorTypeNotFound, Code: CodeInputNotFound}
	ErrInputUnreadable    = &AnalyzerError{Type: ErrorTypeFileSystem, Code: CodeInputUnreadable}
	ErrMetadataExtraction = &AnalyzerError{Type: ErrorTypeParsing, Code: CodeMetadataExtraction}
	ErrSerialization      = &AnalyzerError{Type: ErrorTypeSerialization, Code: CodeSerialization}
	ErrInvalidConfig      = &AnalyzerError{Type: ErrorTypeConfiguration, Code: CodeInvalidConfig}
)

// AnalyzerError represents an error with context and suggestions
type AnalyzerError struct {
	Type        ErrorType         `json:"type"`
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Cause       error             `json:"cause,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Stack       []string          `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *AnalyzerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AnalyzerError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *AnalyzerError) Is(target error) bool {
	if t, ok := target.(*AnalyzerError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error
func (e *AnalyzerError) WithContext(key, value string) *AnalyzerError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithSuggestions appends remediation hints shown by FormatDetailed
func (e *AnalyzerError) WithSuggestions(suggestions ...string) *AnalyzerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// FormatDetailed renders the error with its context (sorted by key), cause
// and suggestions, for --verbose output.
func (e *AnalyzerError) FormatDetailed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error [%s]: %s\n", e.Type, e.Code, e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\nContext:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "   %s: %s\n", k, e.Context[k])
		}
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying cause: %v\n", e.Cause)
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "   - %s\n", s)
		}
	}

	return b.String()
}

// NewError creates a new AnalyzerError
func NewError(errorType ErrorType, code, message string) *AnalyzerError {
	return &AnalyzerError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Context: make(map[string]string),
		Stack:   captureStack(),
	}
}

// WrapError wraps an existing error with AnalyzerError
func WrapError(err error, errorType ErrorType, code, message string) *AnalyzerError {
	e := NewError(errorType, code, message)
	e.Cause = err
	return e
}

// captureStack records the module's own frames above the constructors
func captureStack() []string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var stack []string
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, "apkscope") &&
			!strings.HasPrefix(frame.Function, "github.com/huanfeng/apkscope/internal/errors.") {
			stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}
	return stack
}

// Common error constructors

// NewInputNotFoundError reports a missing input file
func NewInputNotFoundError(path string, cause error) *AnalyzerError {
	return WrapError(cause, ErrorTypeNotFound, CodeInputNotFound, fmt.Sprintf("APK file not found: %s", path)).
		WithContext("path", path).
		WithSuggestions(
			"Check the path or file name",
			"Use an absolute path if the working directory differs",
		)
}

// NewInputUnreadableError reports an input file that exists but cannot be read
func NewInputUnreadableError(path string, cause error) *AnalyzerError {
	return WrapError(cause, ErrorTypeFileSystem, CodeInputUnreadable, fmt.Sprintf("cannot read APK file: %s", path)).
		WithContext("path", path).
		WithSuggestions(
			"Check file permissions",
			"Ensure the path points to a regular file",
		)
}

// NewMetadataExtractionError reports a metadata source failing on a file.
// Callers downgrade it to a warning whenever a fallback exists.
func NewMetadataExtractionError(source, path string, cause error) *AnalyzerError {
	return WrapError(cause, ErrorTypeParsing, CodeMetadataExtraction, fmt.Sprintf("%s could not extract metadata", source)).
		WithContext("source", source).
		WithContext("path", path).
		WithSuggestions(
			"Verify the file is a valid APK",
			"Check if the file is corrupted",
		)
}

// NewSerializationError reports a report that could not be encoded or written
func NewSerializationError(path string, cause error) *AnalyzerError {
	return WrapError(cause, ErrorTypeSerialization, CodeSerialization, fmt.Sprintf("failed to write report: %s", path)).
		WithContext("path", path).
		WithSuggestions(
			"Ensure you have write access to the target location",
			"Verify disk space availability",
		)
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(message string) *AnalyzerError {
	return NewError(ErrorTypeConfiguration, CodeInvalidConfig, message).
		WithSuggestions(
			"Check the configuration file syntax",
			"Run 'apkscope init-config' to regenerate configuration",
		)
}

// NewInvalidReportError reports a saved report that could not be decoded
func NewInvalidReportError(path string, cause error) *AnalyzerError {
	return WrapError(cause, ErrorTypeValidation, CodeInvalidReport, fmt.Sprintf("invalid report file: %s", path)).
		WithContext("path", path)
}

// Format returns the detailed form for AnalyzerError values and the plain
// message for anything else.
func Format(err error, detailed bool) string {
	if err == nil {
		return ""
	}
	var ae *AnalyzerError
	if detailed && As(err, &ae) {
		return ae.FormatDetailed()
	}
	return err.Error()
}
