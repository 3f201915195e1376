package intake

import (
	"github.com/StanfordCorporation/intake-engine/i18n"
)

// ValidateSection checks one section of the form and returns the issues found,
// keyed by field. Only fields that are both in the section and currently
// visible are evaluated: a required field that is hidden is never an error.
//
// The mode is the rendering-context override from ValidateOpt: in ModeAssisted
// every field is optional regardless of the schema's required flag, while
// ModeSelfService lets the schema govern. Answer-format problems (bad date,
// unknown radio option) are reported in both modes. Validation is local and
// synchronous; it never mutates the form.
func ValidateSection(f *FormState, section int, opt ValidateOpt) Issues {
	return validateFields(f, f.idx.SectionFields(section), opt)
}

// ValidateAll checks every section of the form under the same rules as
// ValidateSection.
func ValidateAll(f *FormState, opt ValidateOpt) Issues {
	return validateFields(f, f.idx.Fields(), opt)
}

func validateFields(f *FormState, fields []string, opt ValidateOpt) Issues {
	var iss Issues
	for _, field := range fields {
		if !f.IsVisible(field) {
			continue
		}
		q, ok := f.idx.Question(field)
		if !ok {
			continue
		}
		value, _ := f.Value(field)
		if value == "" {
			if q.Required && opt.Mode == ModeSelfService {
				iss = AppendIssues(iss, Issue{
					Field:   field,
					Code:    CodeRequired,
					Message: i18n.T(CodeRequired, map[string]string{"label": q.Label}),
				})
			}
			continue
		}
		iss = AppendIssues(iss, CheckAnswer(q, value)...)
	}
	return iss
}
