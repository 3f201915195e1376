// Package dsl builds schema documents programmatically, in the same shape
// intake.Load produces from JSON/YAML. It exists for fixtures, tooling and
// embedded questionnaires; it is not a form-builder surface — the resulting
// document is the same read-only input the engine always consumes.
package dsl

import (
	intake "github.com/StanfordCorporation/intake-engine"
)

// SchemaBuilder accumulates sections and questions in declaration order.
type SchemaBuilder struct {
	schema intake.Schema
}

// SectionBuilder adds questions to one section.
type SectionBuilder struct {
	b   *SchemaBuilder
	idx int
}

// questionStep allows chained refinement of the question just added.
type questionStep struct {
	s   *SectionBuilder
	idx int
}

// NewSchema starts an empty schema document.
func NewSchema(title string) *SchemaBuilder {
	return &SchemaBuilder{schema: intake.Schema{Title: title}}
}

// Section appends a numbered section and returns its builder.
func (b *SchemaBuilder) Section(number int, title string) *SectionBuilder {
	b.schema.Sections = append(b.schema.Sections, intake.Section{Number: number, Title: title})
	return &SectionBuilder{b: b, idx: len(b.schema.Sections) - 1}
}

// Build finalizes the document and runs the engine's semantic checks
// (duplicate fields, dangling parents, dependency cycles), returning the
// ready Index alongside the schema.
func (b *SchemaBuilder) Build() (*intake.Schema, *intake.Index, error) {
	s := b.schema
	idx, err := intake.BuildIndex(&s)
	if err != nil {
		return nil, nil, err
	}
	return &s, idx, nil
}

// MustBuild is Build for fixtures; it panics on an invalid schema.
func (b *SchemaBuilder) MustBuild() (*intake.Schema, *intake.Index) {
	s, idx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s, idx
}

func (s *SectionBuilder) add(q intake.Question) *questionStep {
	sec := &s.b.schema.Sections[s.idx]
	sec.Questions = append(sec.Questions, q)
	return &questionStep{s: s, idx: len(sec.Questions) - 1}
}

// Text appends a single-line text question.
func (s *SectionBuilder) Text(field, label string) *questionStep {
	return s.add(intake.Question{FieldName: field, Label: label, Type: intake.FieldText})
}

// Textarea appends a multi-line text question.
func (s *SectionBuilder) Textarea(field, label string) *questionStep {
	return s.add(intake.Question{FieldName: field, Label: label, Type: intake.FieldTextarea})
}

// Radio appends a single-choice question; values double as labels unless
// Options replaces them.
func (s *SectionBuilder) Radio(field, label string, values ...string) *questionStep {
	opts := make([]intake.ChoiceOption, len(values))
	for i, v := range values {
		opts[i] = intake.ChoiceOption{Value: v, Label: v}
	}
	return s.add(intake.Question{FieldName: field, Label: label, Type: intake.FieldRadio, Options: opts})
}

// YesNo appends a radio question with the portal's standard yes/no choices.
func (s *SectionBuilder) YesNo(field, label string) *questionStep {
	return s.Radio(field, label, "yes", "no")
}

// YesNoUnsure appends a radio question with yes/no/unsure choices.
func (s *SectionBuilder) YesNoUnsure(field, label string) *questionStep {
	return s.Radio(field, label, "yes", "no", "unsure")
}

// Date appends a date question.
func (s *SectionBuilder) Date(field, label string) *questionStep {
	return s.add(intake.Question{FieldName: field, Label: label, Type: intake.FieldDate})
}

// Number appends a numeric question.
func (s *SectionBuilder) Number(field, label string) *questionStep {
	return s.add(intake.Question{FieldName: field, Label: label, Type: intake.FieldNumber})
}

// File appends a file-upload question with the loader's default limits.
func (s *SectionBuilder) File(field, label string) *questionStep {
	return s.add(intake.Question{
		FieldName:   field,
		Label:       label,
		Type:        intake.FieldFile,
		MaxFiles:    intake.DefaultMaxFiles,
		MaxFileSize: intake.DefaultMaxFileSize,
	})
}

// Section starts the next section from a question chain.
func (q *questionStep) Section(number int, title string) *SectionBuilder {
	return q.s.b.Section(number, title)
}

// Build finalizes the document from a question chain.
func (q *questionStep) Build() (*intake.Schema, *intake.Index, error) { return q.s.b.Build() }

// MustBuild finalizes the document from a question chain, panicking on error.
func (q *questionStep) MustBuild() (*intake.Schema, *intake.Index) { return q.s.b.MustBuild() }

func (q *questionStep) question() *intake.Question {
	return &q.s.b.schema.Sections[q.s.idx].Questions[q.idx]
}

// Required marks the question required in self-service mode.
func (q *questionStep) Required() *questionStep {
	q.question().Required = true
	return q
}

// DependsOn makes the question conditional on another field's answer.
func (q *questionStep) DependsOn(parent, requiredValue string) *questionStep {
	q.question().DependsOn = &intake.Dependency{ParentField: parent, RequiredValue: requiredValue}
	return q
}

// External sets the persistence key the answer is stored under.
func (q *questionStep) External(property string) *questionStep {
	q.question().ExternalProperty = property
	return q
}

// Options replaces a radio question's choices with value/label pairs.
func (q *questionStep) Options(opts ...intake.ChoiceOption) *questionStep {
	q.question().Options = opts
	return q
}

// Limits overrides a file question's count and per-file size limits.
func (q *questionStep) Limits(maxFiles int, maxFileSize int64) *questionStep {
	qq := q.question()
	qq.MaxFiles = maxFiles
	qq.MaxFileSize = maxFileSize
	return q
}

// Text appends a sibling question, continuing the current section.
func (q *questionStep) Text(field, label string) *questionStep { return q.s.Text(field, label) }

// Textarea appends a sibling question, continuing the current section.
func (q *questionStep) Textarea(field, label string) *questionStep { return q.s.Textarea(field, label) }

// Radio appends a sibling question, continuing the current section.
func (q *questionStep) Radio(field, label string, values ...string) *questionStep {
	return q.s.Radio(field, label, values...)
}

// YesNo appends a sibling question, continuing the current section.
func (q *questionStep) YesNo(field, label string) *questionStep { return q.s.YesNo(field, label) }

// YesNoUnsure appends a sibling question, continuing the current section.
func (q *questionStep) YesNoUnsure(field, label string) *questionStep {
	return q.s.YesNoUnsure(field, label)
}

// Date appends a sibling question, continuing the current section.
func (q *questionStep) Date(field, label string) *questionStep { return q.s.Date(field, label) }

// Number appends a sibling question, continuing the current section.
func (q *questionStep) Number(field, label string) *questionStep { return q.s.Number(field, label) }

// File appends a sibling question, continuing the current section.
func (q *questionStep) File(field, label string) *questionStep { return q.s.File(field, label) }
