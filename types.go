package intake

// FieldType is the closed set of question kinds a schema may declare.
// Per-type answer checking dispatches over this tag (see fieldCheckers in
// answers.go); there is no runtime type inspection.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldRadio    FieldType = "radio"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
	FieldFile     FieldType = "file"
)

// knownFieldTypes is the membership set for FieldType validation at load time.
var knownFieldTypes = map[FieldType]struct{}{
	FieldText:     {},
	FieldTextarea: {},
	FieldRadio:    {},
	FieldDate:     {},
	FieldNumber:   {},
	FieldFile:     {},
}

// Mode selects the rendering context the questionnaire is completed in. It is
// an explicit input to validation, never inferred from caller identity.
type Mode int

const (
	// ModeSelfService is the client-facing context: the schema's own required
	// flags govern validation.
	ModeSelfService Mode = iota
	// ModeAssisted is the agent-on-behalf-of-client context: every field is
	// optional regardless of the schema default, since the agent may not know
	// every answer.
	ModeAssisted
)

// MissingParentPolicy controls how BuildIndex treats a conditional question
// whose dependsOn.parentField references no known field. The legacy behavior
// of the portal this engine replaces was to silently render such fields as
// always visible; that can expose fields which should have stayed conditional,
// so the default here is a hard error.
type MissingParentPolicy int

const (
	// MissingParentError rejects the schema with a SchemaError (default).
	MissingParentError MissingParentPolicy = iota
	// MissingParentVisible replicates the legacy fallback: the dependency is
	// dropped and the field is always visible.
	MissingParentVisible
)

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	Mode Mode
}
