package intake

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// answerChecker verifies a non-empty stored answer against its question's
// type. Checkers are total over strings and never mutate anything.
type answerChecker func(q *Question, value string) Issues

// fieldCheckers is the closed dispatch table over FieldType. Free-text and
// file fields carry no format constraint at this layer (file values are
// attachment id lists owned by attach.Tracker).
var fieldCheckers = map[FieldType]answerChecker{
	FieldText:     checkNothing,
	FieldTextarea: checkNothing,
	FieldFile:     checkNothing,
	FieldRadio:    checkRadio,
	FieldDate:     checkDate,
	FieldNumber:   checkNumber,
}

// CheckAnswer validates a single answer against its question type. Empty
// values are always acceptable here; required-ness is the Validator's concern.
func CheckAnswer(q *Question, value string) Issues {
	if value == "" {
		return nil
	}
	check, ok := fieldCheckers[q.Type]
	if !ok {
		return Issues{{
			Field:   q.FieldName,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("unknown field type %q", q.Type),
		}}
	}
	return check(q, value)
}

func checkNothing(*Question, string) Issues { return nil }

func checkRadio(q *Question, value string) Issues {
	for _, opt := range q.Options {
		if strings.EqualFold(value, opt.Value) {
			return nil
		}
	}
	return Issues{{
		Field:   q.FieldName,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("%q is not one of the declared options", value),
		Params:  map[string]any{"got": value},
	}}
}

// dateLayouts are tried in order; the portal stores plain dates but accepts a
// full timestamp from upstream records.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func checkDate(q *Question, value string) Issues {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return Issues{{
		Field:   q.FieldName,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%q is not a date", value),
		Hint:    "expected YYYY-MM-DD",
	}}
}

func checkNumber(q *Question, value string) Issues {
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return Issues{{
			Field:   q.FieldName,
			Code:    CodeInvalidFormat,
			Message: fmt.Sprintf("%q is not a number", value),
			Cause:   err,
		}}
	}
	return nil
}
