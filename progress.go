package intake

// PercentComplete returns the share of schema fields holding a non-empty
// answer, as an integer 0-100. The denominator is every schema field, visible
// or not; the numerator counts non-empty stored values. Callers must take the
// answers from a FormState that has already cascaded its clears (any map from
// FormState.Values satisfies this) — computing progress over a raw answer map
// that still holds values for hidden fields overstates completion. Kept as a
// pure function so the calculator stays cheap and order-independent.
func PercentComplete(answers map[string]string, idx *Index) int {
	total := idx.Len()
	if total == 0 {
		return 0
	}
	filled := 0
	for _, field := range idx.Fields() {
		if answers[field] != "" {
			filled++
		}
	}
	return filled * 100 / total
}
