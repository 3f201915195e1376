// Package i18n maps issue codes to human-readable messages shown next to form
// fields. The built-in dictionary is English; deployments serving other
// jurisdictions plug in their own Translator.
package i18n

// Translator retrieves localized messages for issue codes. data provides
// optional metadata to embed in the message (for example, "label" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "required":
		if label := data["label"]; label != "" {
			return label + " is required"
		}
		return "this field is required"
	case "unknown_field":
		return "unknown field"
	case "invalid_enum":
		return "not a valid choice"
	case "invalid_format":
		return "invalid format"
	case "parse_error":
		return "parse error"
	case "duplicate_field":
		return "duplicate field"
	case "unknown_parent":
		return "depends on unknown field"
	case "self_dependency":
		return "field depends on itself"
	case "dependency_cycle":
		return "dependency cycle"
	case "too_many_files":
		if max := data["max"]; max != "" {
			return "too many files (limit " + max + ")"
		}
		return "too many files"
	case "file_too_big":
		if max := data["max"]; max != "" {
			return "file too large (limit " + max + " bytes)"
		}
		return "file too large"
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation; nil restores the
// built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
