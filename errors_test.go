package intake_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	intake "github.com/StanfordCorporation/intake-engine"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := intake.Issues{
		{Field: "a", Code: intake.CodeRequired},
		{Field: "b", Code: intake.CodeInvalidEnum},
		{Field: "c", Code: intake.CodeInvalidFormat},
		{Field: "d", Code: intake.CodeUnknownField},
	}
	s := iss.Error()
	require.Contains(t, s, "required at a")
	require.Contains(t, s, "total 4", "summary truncates after the first few issues")
	require.NotContains(t, s, "unknown_field", "fourth issue elided")

	require.Empty(t, intake.Issues{}.Error())
}

func TestIssues_ByField(t *testing.T) {
	iss := intake.Issues{
		{Field: "a", Code: intake.CodeRequired, Message: "first"},
		{Field: "a", Code: intake.CodeInvalidFormat, Message: "second"},
		{Field: "b", Code: intake.CodeRequired, Message: "other"},
	}
	require.Equal(t, map[string]string{"a": "first", "b": "other"}, iss.ByField())
	require.Nil(t, intake.Issues(nil).ByField())
}

func TestAsIssues(t *testing.T) {
	iss := intake.Issues{{Field: "a", Code: intake.CodeRequired}}
	wrapped := fmt.Errorf("validate: %w", iss)

	got, ok := intake.AsIssues(wrapped)
	require.True(t, ok)
	require.Equal(t, iss, got)

	_, ok = intake.AsIssues(nil)
	require.False(t, ok)
	_, ok = intake.AsIssues(fmt.Errorf("plain"))
	require.False(t, ok)
}

func TestSchemaError_Message(t *testing.T) {
	se := &intake.SchemaError{Issues: intake.Issues{{Field: "x", Code: intake.CodeCycle}}}
	require.True(t, strings.HasPrefix(se.Error(), "intake: invalid schema"))

	got, ok := intake.AsIssues(se)
	require.True(t, ok, "SchemaError unwraps to its issues")
	require.Len(t, got, 1)
}
