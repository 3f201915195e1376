package intake

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a schema document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Default file limits applied when a file question declares none.
const (
	DefaultMaxFiles    = 5
	DefaultMaxFileSize = 10 << 20 // 10 MiB
)

// structValidate checks the decoded document against the `validate` struct
// tags before any semantic analysis runs.
var structValidate = validator.New(validator.WithRequiredStructEnabled())

// LoadJSON decodes a JSON schema document and verifies its structure. Semantic
// checks (duplicate fields, unknown parents, cycles) run later in BuildIndex.
func LoadJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &SchemaError{Issues: Issues{{Code: CodeParseError, Message: "invalid JSON schema document", Cause: err}}}
	}
	return checkDocument(&s)
}

// LoadYAML decodes a YAML schema document and verifies its structure.
func LoadYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &SchemaError{Issues: Issues{{Code: CodeParseError, Message: "invalid YAML schema document", Cause: err}}}
	}
	return checkDocument(&s)
}

// Load reads an entire document from r and decodes it in the given format.
func Load(r io.Reader, f Format) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &SchemaError{Issues: Issues{{Code: CodeParseError, Message: "unreadable schema document", Cause: err}}}
	}
	switch f {
	case FormatYAML:
		return LoadYAML(data)
	default:
		return LoadJSON(data)
	}
}

// checkDocument runs tag-driven structural validation plus the shape checks
// the tags cannot express (field-type membership, radio options, file limits).
func checkDocument(s *Schema) (*Schema, error) {
	if err := structValidate.Struct(s); err != nil {
		var iss Issues
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				iss = AppendIssues(iss, Issue{
					Code:    CodeParseError,
					Message: fmt.Sprintf("schema document: %s failed %q", fe.Namespace(), fe.Tag()),
				})
			}
		} else {
			iss = Issues{{Code: CodeParseError, Message: "schema document failed structural validation", Cause: err}}
		}
		return nil, &SchemaError{Issues: iss}
	}

	var iss Issues
	for si := range s.Sections {
		for qi := range s.Sections[si].Questions {
			q := &s.Sections[si].Questions[qi]
			if _, ok := knownFieldTypes[q.Type]; !ok {
				iss = AppendIssues(iss, Issue{
					Field:   q.FieldName,
					Code:    CodeInvalidEnum,
					Message: fmt.Sprintf("unknown field type %q", q.Type),
				})
				continue
			}
			if q.Type == FieldRadio && len(q.Options) == 0 {
				iss = AppendIssues(iss, Issue{
					Field:   q.FieldName,
					Code:    CodeParseError,
					Message: "radio question declares no options",
				})
			}
			if q.Type == FieldFile {
				if q.MaxFiles == 0 {
					q.MaxFiles = DefaultMaxFiles
				}
				if q.MaxFileSize == 0 {
					q.MaxFileSize = DefaultMaxFileSize
				}
			}
		}
	}
	if len(iss) > 0 {
		return nil, &SchemaError{Issues: iss}
	}
	return s, nil
}
