package intake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/StanfordCorporation/intake-engine/internal/graphcycle"
)

// Edge is one conditional-visibility dependency: Child is visible only while
// Parent's stored answer equals RequiredValue.
type Edge struct {
	Child         string
	Parent        string
	RequiredValue string
}

// DependencyGraph holds the directed dependency edges of a schema. It is built
// once per schema by BuildIndex and is acyclic by construction: build fails
// with a *SchemaError when a field (transitively) depends on itself, since an
// unresolved cycle would never converge to a stable visible set.
type DependencyGraph struct {
	edges    map[string]Edge     // child -> its single dependency
	children map[string][]string // parent -> dependent children, document order
}

// buildGraph derives the dependency edges from the index and runs cycle
// detection. Under MissingParentVisible a dangling parent reference drops the
// edge, replicating the legacy always-visible fallback.
func buildGraph(idx *Index, policy MissingParentPolicy) (*DependencyGraph, error) {
	g := &DependencyGraph{
		edges:    map[string]Edge{},
		children: map[string][]string{},
	}

	var iss Issues
	for _, field := range idx.order {
		q := idx.fields[field]
		if !q.Conditional() {
			continue
		}
		dep := q.DependsOn
		if dep.ParentField == field {
			iss = AppendIssues(iss, Issue{
				Field:   field,
				Code:    CodeSelfDependency,
				Message: fmt.Sprintf("field %q depends on itself", field),
			})
			continue
		}
		if _, ok := idx.fields[dep.ParentField]; !ok {
			if policy == MissingParentVisible {
				continue
			}
			iss = AppendIssues(iss, Issue{
				Field:   field,
				Code:    CodeUnknownParent,
				Message: fmt.Sprintf("field %q depends on unknown field %q", field, dep.ParentField),
				Hint:    "declare the parent question or use MissingParentVisible to replicate the legacy fallback",
			})
			continue
		}
		g.edges[field] = Edge{Child: field, Parent: dep.ParentField, RequiredValue: dep.RequiredValue}
		g.children[dep.ParentField] = append(g.children[dep.ParentField], field)
	}
	if len(iss) > 0 {
		return nil, &SchemaError{Issues: iss}
	}

	if err := g.detectCycle(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *DependencyGraph) detectCycle() error {
	starts := make([]string, 0, len(g.edges))
	for child := range g.edges {
		starts = append(starts, child)
	}
	err := graphcycle.Detect(graphcycle.Config[string]{
		Starts: starts,
		// Parents were resolved against the index already; a field without an
		// outgoing edge is simply a traversal leaf.
		Missing: graphcycle.MissingPolicyIgnore,
		Next: func(field string) []string {
			if e, ok := g.edges[field]; ok {
				return []string{e.Parent}
			}
			return nil
		},
	})
	if err == nil {
		return nil
	}
	var cycleErr graphcycle.CycleError[string]
	if errors.As(err, &cycleErr) {
		return &SchemaError{Issues: Issues{{
			Field:   cycleErr.Key,
			Code:    CodeCycle,
			Message: fmt.Sprintf("dependency cycle: %s", strings.Join(cycleErr.Path, " -> ")),
		}}}
	}
	return &SchemaError{Issues: Issues{{Code: CodeCycle, Message: "dependency cycle detection failed", Cause: err}}}
}

// Edge returns the dependency edge of a conditional field.
func (g *DependencyGraph) Edge(field string) (Edge, bool) {
	e, ok := g.edges[field]
	return e, ok
}

// Edges returns every dependency edge keyed by child field.
func (g *DependencyGraph) Edges() map[string]Edge { return g.edges }

// ChildrenOf returns the fields directly depending on the given parent, in
// document order. Cascading clears do not rely on this (visibility is
// recomputed for the whole field set); it exists for callers that render
// dependent questions grouped under their parent.
func (g *DependencyGraph) ChildrenOf(parent string) []string { return g.children[parent] }
