package validation

import "github.com/go-playground/validator/v10"

// Rule pairs a validator tag with the message shown when the tag fails.
type Rule struct {
	Tag     string
	Message string
}

// FieldRules maps a form field name to the rules evaluated on it, in order.
type FieldRules map[string][]Rule

func Required(msg string) Rule {
	if msg == "" {
		msg = MsgRequired
	}
	return Rule{Tag: "notblank", Message: msg}
}

func URL() Rule {
	return Rule{Tag: "http_url", Message: MsgURL}
}

func Email() Rule {
	return Rule{Tag: "loose_email", Message: MsgEmail}
}

// Check evaluates the rules of field against value and returns the message of
// the first failing rule, or "" when the value passes. Unknown fields pass.
func (fr FieldRules) Check(v *validator.Validate, field, value string) string {
	for _, r := range fr[field] {
		if err := v.Var(value, r.Tag); err != nil {
			return r.Message
		}
	}
	return ""
}
