package intake

// Schema is a declarative questionnaire document: an ordered list of sections,
// each holding an ordered list of questions. It is immutable once loaded and
// read-only to the engine; the caller owns the document.
type Schema struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections" validate:"required,min=1,dive"`
}

// Section groups related questions under a numbered heading.
type Section struct {
	Number    int        `json:"number" yaml:"number" validate:"required,min=1"`
	Title     string     `json:"title" yaml:"title" validate:"required"`
	Questions []Question `json:"questions" yaml:"questions" validate:"dive"`
}

// Question describes a single form field. FieldName is the engine-wide unique
// key; ExternalProperty is the key the caller persists the answer under (a CRM
// property name in the conveyancing portal).
type Question struct {
	FieldName        string         `json:"fieldName" yaml:"fieldName" validate:"required"`
	Label            string         `json:"label" yaml:"label" validate:"required"`
	ExternalProperty string         `json:"externalProperty" yaml:"externalProperty"`
	Type             FieldType      `json:"type" yaml:"type" validate:"required"`
	Options          []ChoiceOption `json:"options,omitempty" yaml:"options,omitempty" validate:"dive"`
	Required         bool           `json:"required,omitempty" yaml:"required,omitempty"`
	DependsOn        *Dependency    `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	// File-type limits; zero means the loader default applies.
	MaxFiles    int   `json:"maxFiles,omitempty" yaml:"maxFiles,omitempty" validate:"min=0"`
	MaxFileSize int64 `json:"maxFileSizeBytes,omitempty" yaml:"maxFileSizeBytes,omitempty" validate:"min=0"`
}

// Conditional reports whether the question's visibility depends on another
// question's answer.
func (q *Question) Conditional() bool { return q.DependsOn != nil }

// Dependency ties a conditional question to its parent: the question is
// visible only while the parent's stored answer equals RequiredValue
// (case-insensitively for strings).
type Dependency struct {
	ParentField   string `json:"parentField" yaml:"parentField" validate:"required"`
	RequiredValue string `json:"requiredValue" yaml:"requiredValue" validate:"required"`
}

// ChoiceOption is a single radio choice.
type ChoiceOption struct {
	Value string `json:"value" yaml:"value" validate:"required"`
	Label string `json:"label" yaml:"label"`
}
