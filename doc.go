package intake

// Package intake implements a schema-driven conditional questionnaire engine:
//
// - Declarative schema documents (JSON/YAML) describing sections, questions and
//   answer-dependent visibility (Load/BuildIndex)
// - A dependency graph with build-time cycle detection (SchemaError, never a
//   runtime divergence)
// - Form state with cascading clears: hiding a field always discards its value,
//   transitively, in a single SetField call
// - Role-aware validation (assisted vs self-service), progress accounting and
//   per-field attachment tracking decoupled from textual answers
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the programmatic schema builder under dsl/, attachment handling under attach/,
//   and the CLI under cmd/intake.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  sch, err := intake.LoadJSON(doc)
//  idx, err := intake.BuildIndex(sch)
//  form := intake.NewForm(idx)
//  err = form.SetField("has_pool", "yes")
//  iss := intake.ValidateSection(form, 1, intake.ValidateOpt{Mode: intake.ModeSelfService})
//  pct := intake.PercentComplete(form.Values(), idx)
