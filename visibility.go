package intake

import "strings"

// Visible computes the set of currently visible fields from the complete
// answer map. Non-conditional fields are always visible; a conditional field
// is visible iff its parent's stored answer equals the required value
// (case-insensitive string comparison).
//
// Only one level of indirection is evaluated per field. That is sufficient for
// arbitrarily deep chains because the function always runs against the full,
// already-updated answer map and hidden ancestors have their stored values
// cleared by FormState: a grandchild's visibility hinges on its parent's
// value, not on the parent's visibility flag. Pure and deterministic; same
// inputs always produce the same set.
func Visible(idx *Index, answers map[string]string) map[string]struct{} {
	out := make(map[string]struct{}, len(idx.order))
	g := idx.graph
	for _, field := range idx.order {
		e, conditional := g.Edge(field)
		if !conditional {
			out[field] = struct{}{}
			continue
		}
		if strings.EqualFold(answers[e.Parent], e.RequiredValue) {
			out[field] = struct{}{}
		}
	}
	return out
}
