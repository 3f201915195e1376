package intake

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired       = "required"
	CodeUnknownField   = "unknown_field"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidFormat  = "invalid_format"
	CodeParseError     = "parse_error"
	CodeDuplicateField = "duplicate_field"
	CodeUnknownParent  = "unknown_parent"
	CodeSelfDependency = "self_dependency"
	CodeCycle          = "dependency_cycle"
	// Attachment limits (checked before any store call)
	CodeTooManyFiles = "too_many_files"
	CodeFileTooBig   = "file_too_big"
)

// Issue represents a single engine-level problem, keyed by the field it
// concerns. Schema-shape issues (duplicates, cycles) use the offending field
// name as the key as well.
type Issue struct {
	Field   string // fieldName the issue concerns; "" for document-level issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"max":5, "got":7}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at has_pool
		fmt.Fprintf(b, "%s at %s", it.Code, it.Field)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ByField projects the issues into a field->message map, keeping the first
// message per field. Convenient for rendering per-field error text.
func (iss Issues) ByField() map[string]string {
	if len(iss) == 0 {
		return nil
	}
	out := make(map[string]string, len(iss))
	for _, it := range iss {
		if _, ok := out[it.Field]; !ok {
			out[it.Field] = it.Message
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a malformed schema document. It is raised at load/index
// time and is never recoverable at runtime without reloading a corrected
// schema.
type SchemaError struct {
	Issues Issues
}

func (e *SchemaError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "intake: invalid schema"
	}
	return "intake: invalid schema: " + e.Issues.Error()
}

func (e *SchemaError) Unwrap() error { return e.Issues }

// AsSchemaError extracts a *SchemaError from an error chain.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// PersistenceError wraps a Save/Submit failure from the caller's sink. The
// form state is retained unchanged so no user data is lost; retry policy
// belongs to the caller.
type PersistenceError struct {
	Op    string // "save" or "submit"
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("intake: %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
