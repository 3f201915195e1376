package intake

import (
	"fmt"
	"sync"
)

// Index is the fast-lookup projection of a schema document: field→question,
// field→label, section→ordered field list, plus the dependency graph. It is
// immutable after BuildIndex and safe for concurrent readers.
type Index struct {
	schema        *Schema
	fields        map[string]*Question
	labels        map[string]string
	order         []string
	sections      []int
	sectionFields map[int][]string
	sectionOf     map[string]int
	graph         *DependencyGraph
	policy        MissingParentPolicy
}

// IndexOption customizes BuildIndex.
type IndexOption func(*indexConfig)

type indexConfig struct {
	missingParent MissingParentPolicy
}

// WithMissingParentPolicy selects how a dependsOn.parentField that references
// no known field is treated. The default is MissingParentError.
func WithMissingParentPolicy(p MissingParentPolicy) IndexOption {
	return func(c *indexConfig) { c.missingParent = p }
}

// indexCache memoizes default-policy builds by document identity, so repeated
// BuildIndex calls against the same loaded schema are free.
var indexCache sync.Map // *Schema -> *Index

// BuildIndex projects a loaded schema into lookup structures and builds the
// dependency graph, failing with a *SchemaError on duplicate field names,
// unknown parent references (under the default policy) or dependency cycles.
// It never mutates the schema document.
func BuildIndex(s *Schema, opts ...IndexOption) (*Index, error) {
	cfg := indexConfig{missingParent: MissingParentError}
	for _, o := range opts {
		o(&cfg)
	}
	if len(opts) == 0 {
		if cached, ok := indexCache.Load(s); ok {
			return cached.(*Index), nil
		}
	}

	idx := &Index{
		schema:        s,
		fields:        map[string]*Question{},
		labels:        map[string]string{},
		sectionFields: map[int][]string{},
		sectionOf:     map[string]int{},
		policy:        cfg.missingParent,
	}

	var iss Issues
	for si := range s.Sections {
		sec := &s.Sections[si]
		idx.sections = append(idx.sections, sec.Number)
		for qi := range sec.Questions {
			q := &sec.Questions[qi]
			if _, dup := idx.fields[q.FieldName]; dup {
				iss = AppendIssues(iss, Issue{
					Field:   q.FieldName,
					Code:    CodeDuplicateField,
					Message: fmt.Sprintf("field %q declared more than once", q.FieldName),
				})
				continue
			}
			idx.fields[q.FieldName] = q
			idx.labels[q.FieldName] = q.Label
			idx.order = append(idx.order, q.FieldName)
			idx.sectionFields[sec.Number] = append(idx.sectionFields[sec.Number], q.FieldName)
			idx.sectionOf[q.FieldName] = sec.Number
		}
	}
	if len(iss) > 0 {
		return nil, &SchemaError{Issues: iss}
	}

	g, err := buildGraph(idx, cfg.missingParent)
	if err != nil {
		return nil, err
	}
	idx.graph = g

	if len(opts) == 0 {
		indexCache.Store(s, idx)
	}
	return idx, nil
}

// Question returns the question config for a field.
func (x *Index) Question(field string) (*Question, bool) {
	q, ok := x.fields[field]
	return q, ok
}

// Label returns the display label for a field ("" when unknown).
func (x *Index) Label(field string) string { return x.labels[field] }

// Fields returns every field name in document order.
func (x *Index) Fields() []string { return x.order }

// Len is the total number of schema fields.
func (x *Index) Len() int { return len(x.order) }

// Sections returns the section numbers in document order.
func (x *Index) Sections() []int { return x.sections }

// SectionFields returns the ordered field names of one section.
func (x *Index) SectionFields(number int) []string { return x.sectionFields[number] }

// SectionOf returns the section number a field belongs to (0 when unknown).
func (x *Index) SectionOf(field string) int { return x.sectionOf[field] }

// Graph exposes the dependency graph derived from the schema.
func (x *Index) Graph() *DependencyGraph { return x.graph }

// Schema returns the underlying document (read-only by convention).
func (x *Index) Schema() *Schema { return x.schema }
