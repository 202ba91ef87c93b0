// Package validate implements the account form validation engine: a
// closed catalog of field rules, cross-field password confirmation and
// the error message mapping the client displays.  Validation is a pure
// evaluation pass — every call recomputes violations from the current
// field values and returns a fresh set, so there is no accumulated
// error state to keep in sync.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Violation names reported by the rule catalog.  These are the keys a
// caller matches on; messages.go maps them to display text.
const (
	ViolationRequired  = "required"
	ViolationEmail     = "email"
	ViolationMinLength = "minlength"
	ViolationPattern   = "pattern"
	ViolationMismatch  = "mismatch"
)

var (
	emailRe   = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
	lettersRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

// Rule is one pure predicate over a field value.  check receives the
// value under validation plus the whole form so cross-field rules can
// read their dependency; it returns true when the value passes.
type Rule struct {
	name  string
	arg   int // rule parameter surfaced in messages (minlength)
	check func(value string, f *Form) bool
}

// Name returns the violation name this rule reports on failure.
func (r Rule) Name() string { return r.name }

// Required fails on empty or whitespace-only values.
func Required() Rule {
	return Rule{name: ViolationRequired, check: func(v string, _ *Form) bool {
		return strings.TrimSpace(v) != ""
	}}
}

// Email performs the structural email check, case-insensitively.
// Empty values pass so the rule composes with Required instead of
// duplicating it.
func Email() Rule {
	return Rule{name: ViolationEmail, check: func(v string, _ *Form) bool {
		return v == "" || emailRe.MatchString(strings.ToLower(v))
	}}
}

// EmailPattern is the stricter lower-case shape applied on top of
// Email.  A structurally valid but upper-case address violates only
// this rule, so it reports "pattern" rather than "email".
func EmailPattern() Rule {
	return Rule{name: ViolationPattern, check: func(v string, _ *Form) bool {
		return v == "" || emailRe.MatchString(v)
	}}
}

// MinLength fails values shorter than n runes.  Empty values pass.
func MinLength(n int) Rule {
	return Rule{name: ViolationMinLength, arg: n, check: func(v string, _ *Form) bool {
		return v == "" || len([]rune(v)) >= n
	}}
}

// Letters accepts letters (including accented Latin) and spaces only.
func Letters() Rule {
	return Rule{name: ViolationPattern, check: func(v string, _ *Form) bool {
		return v == "" || lettersRe.MatchString(v)
	}}
}

// Phone requires exactly ten digits.
func Phone() Rule {
	return Rule{name: ViolationPattern, check: func(v string, _ *Form) bool {
		return v == "" || phoneRe.MatchString(v)
	}}
}

// PasswordComplexity requires at least eight characters with an upper
// case letter, a lower case letter and a digit, drawn from letters,
// digits and @$!%*?& only.  RE2 has no lookahead, so the class checks
// are explicit; the violation name is still "pattern" like the other
// format rules.
func PasswordComplexity() Rule {
	return Rule{name: ViolationPattern, check: func(v string, _ *Form) bool {
		if v == "" {
			return true
		}
		if len(v) < 8 {
			return false
		}
		var hasUpper, hasLower, hasDigit bool
		for _, r := range v {
			switch {
			case unicode.IsUpper(r) && r <= unicode.MaxASCII:
				hasUpper = true
			case unicode.IsLower(r) && r <= unicode.MaxASCII:
				hasLower = true
			case r >= '0' && r <= '9':
				hasDigit = true
			case strings.ContainsRune("@$!%*?&", r):
				// allowed symbol
			default:
				return false
			}
		}
		return hasUpper && hasLower && hasDigit
	}}
}

// RequiredTrue fails unless the value is the literal "true"; used for
// checkbox fields such as the terms acceptance.
func RequiredTrue() Rule {
	return Rule{name: ViolationRequired, check: func(v string, _ *Form) bool {
		return v == "true"
	}}
}

// Matches is the cross-field equality rule.  It is attached to the
// dependent field (the confirmation input) and compares against the
// named source field.  Because validation always re-evaluates from
// current values, a mismatch appears and disappears as either side
// changes without disturbing the field's other violations.
func Matches(other string) Rule {
	return Rule{name: ViolationMismatch, check: func(v string, f *Form) bool {
		return v == f.Value(other)
	}}
}
