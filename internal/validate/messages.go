package validate

import "fmt"

// ErrorMessage maps the first violation of the named field to the
// display message the client shows under the input.  Untouched or
// valid fields yield the empty string: suppressing messages before the
// user reaches a field is display policy, not a validity statement.
// Precedence mirrors the client: required, email, minlength, then the
// format and mismatch rules.
func (f *Form) ErrorMessage(name string) string {
	fl, ok := f.Field(name)
	if !ok || !fl.Touched {
		return ""
	}
	violations := f.ValidateField(name)
	if len(violations) == 0 {
		return ""
	}
	has := func(v string) bool {
		for _, x := range violations {
			if x == v {
				return true
			}
		}
		return false
	}
	switch {
	case has(ViolationRequired):
		return fmt.Sprintf("%s es requerido", name)
	case has(ViolationEmail):
		return "Email no válido"
	case has(ViolationMinLength):
		return fmt.Sprintf("Mínimo %d caracteres", f.ruleArg(name, ViolationMinLength))
	case has(ViolationPattern):
		return patternMessage(name)
	case has(ViolationMismatch):
		return "Las contraseñas no coinciden"
	}
	return "Formato inválido"
}

// patternMessage picks the format message by field, since "pattern"
// covers several shapes (digits, letters-only, password classes).
func patternMessage(field string) string {
	switch field {
	case "telefono":
		return "Teléfono debe tener 10 dígitos"
	case "nombre", "apellido":
		return "Solo se permiten letras y espacios"
	case "password":
		return "Debe contener mayúscula, minúscula y número"
	default:
		return "Formato inválido"
	}
}

// CollectErrors walks the fields in declaration order and returns one
// message per field that currently has an active (touched) violation.
// Submit handlers TouchAll first so the list covers the whole form.
func (f *Form) CollectErrors() []string {
	var out []string
	for _, fl := range f.fields {
		if msg := f.ErrorMessage(fl.Name); msg != "" {
			out = append(out, msg)
		}
	}
	return out
}
