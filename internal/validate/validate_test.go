package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemagico/customer-api/internal/validate"
)

// fillRegistration sets every field of a registration form to values
// that pass all rules.
func fillRegistration(f *validate.Form) {
	f.SetValue("nombre", "María")
	f.SetValue("apellido", "García")
	f.SetValue("email", "maria@example.com")
	f.SetValue("telefono", "3001234567")
	f.SetValue("fecha_nacimiento", "1995-04-20")
	f.SetValue("password", "Abc12345")
	f.SetValue("confirm_password", "Abc12345")
	f.SetValue("terminos", "true")
}

func TestRegistrationFormValidWhenFilled(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)

	assert.True(t, f.Valid())
	assert.Empty(t, f.CollectErrors())
}

func TestPasswordComplexity(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)

	// too short and missing an upper case letter
	f.SetValue("password", "abc123")
	f.SetValue("confirm_password", "abc123")
	violations := f.ValidateField("password")
	assert.Contains(t, violations, "pattern")
	assert.Contains(t, violations, "minlength")
	assert.False(t, f.Valid())

	// minlength outranks pattern in the displayed message
	assert.Equal(t, "Mínimo 8 caracteres", f.ErrorMessage("password"))

	f.SetValue("password", "Abc12345")
	f.SetValue("confirm_password", "Abc12345")
	assert.Empty(t, f.ValidateField("password"))
	assert.True(t, f.Valid())
}

func TestPasswordComplexityClasses(t *testing.T) {
	rule := validate.PasswordComplexity()
	f := validate.NewForm()
	f.AddField("password", rule)

	cases := []struct {
		value string
		valid bool
	}{
		{"Abc12345", true},
		{"Abc@1234", true},
		{"abc12345", false}, // no upper
		{"ABC12345", false}, // no lower
		{"Abcdefgh", false}, // no digit
		{"Abc1234", false},  // 7 chars
		{"Abc 1234", false}, // space not in charset
		{"Abc#1234", false}, // # not in charset
		{"", true},          // empty defers to Required
	}
	for _, tc := range cases {
		f.SetValue("password", tc.value)
		got := f.ValidateField("password")
		if tc.valid {
			assert.Empty(t, got, "value %q", tc.value)
		} else {
			assert.Equal(t, []string{"pattern"}, got, "value %q", tc.value)
		}
	}
}

func TestMismatchReportedOnConfirmFieldOnly(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)
	f.SetValue("confirm_password", "Abc12346")

	assert.Empty(t, f.ValidateField("password"))
	assert.Equal(t, []string{"mismatch"}, f.ValidateField("confirm_password"))
	assert.Equal(t, "Las contraseñas no coinciden", f.ErrorMessage("confirm_password"))

	// correcting either side clears the mismatch and nothing else
	f.SetValue("confirm_password", "Abc12345")
	assert.Empty(t, f.ValidateField("confirm_password"))
	assert.True(t, f.Valid())
}

func TestMismatchFollowsSourceField(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)

	// changing the source invalidates the confirmation without touching it
	f.SetValue("password", "Xyz98765")
	assert.Equal(t, []string{"mismatch"}, f.ValidateField("confirm_password"))

	f.SetValue("password", "Abc12345")
	assert.Empty(t, f.ValidateField("confirm_password"))
}

func TestUntouchedFieldSuppressesMessage(t *testing.T) {
	f := validate.RegistrationForm()

	// empty nombre violates required, but no message until touched
	assert.Equal(t, []string{"required"}, f.ValidateField("nombre"))
	assert.Equal(t, "", f.ErrorMessage("nombre"))
	assert.False(t, f.Valid())

	f.Touch("nombre")
	assert.Equal(t, "nombre es requerido", f.ErrorMessage("nombre"))
}

func TestCollectErrorsDeclarationOrder(t *testing.T) {
	f := validate.RegistrationForm()
	f.SetValue("email", "not-an-email")
	f.SetValue("telefono", "123")
	f.TouchAll()

	errs := f.CollectErrors()
	require.GreaterOrEqual(t, len(errs), 4)
	assert.Equal(t, []string{
		"nombre es requerido",
		"apellido es requerido",
		"Email no válido",
		"Teléfono debe tener 10 dígitos",
	}, errs[:4])
}

func TestValidationReturnsFreshSet(t *testing.T) {
	f := validate.RegistrationForm()
	f.SetValue("telefono", "abc")
	assert.Equal(t, []string{"pattern"}, f.ValidateField("telefono"))

	// no stale violations linger after the value is fixed
	f.SetValue("telefono", "3001234567")
	assert.Empty(t, f.ValidateField("telefono"))
}

func TestNameRules(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)

	f.SetValue("nombre", "José Ángel")
	assert.Empty(t, f.ValidateField("nombre"))

	f.SetValue("nombre", "J")
	assert.Equal(t, []string{"minlength"}, f.ValidateField("nombre"))

	f.SetValue("nombre", "R2D2")
	assert.Equal(t, []string{"pattern"}, f.ValidateField("nombre"))
	assert.Equal(t, "Solo se permiten letras y espacios", f.ErrorMessage("nombre"))
}

func TestTermsCheckbox(t *testing.T) {
	f := validate.RegistrationForm()
	fillRegistration(f)

	f.SetValue("terminos", "false")
	assert.Equal(t, []string{"required"}, f.ValidateField("terminos"))

	f.SetValue("terminos", "true")
	assert.Empty(t, f.ValidateField("terminos"))
}

func TestLoginForm(t *testing.T) {
	f := validate.LoginForm()
	f.SetValue("email", "user@example.com")
	f.SetValue("password", "secreto")
	assert.True(t, f.Valid())

	f.SetValue("password", "corta")
	assert.Equal(t, []string{"minlength"}, f.ValidateField("password"))
	assert.Equal(t, "Mínimo 6 caracteres", f.ErrorMessage("password"))

	f.SetValue("email", "USER@EXAMPLE.COM")
	assert.Equal(t, []string{"pattern"}, f.ValidateField("email"))
	assert.Equal(t, "Formato inválido", f.ErrorMessage("email"))
}

func TestEmailAndPatternRulesSplit(t *testing.T) {
	f := validate.LoginForm()
	f.SetValue("password", "secreto")

	// structurally valid but upper case: shape passes, pattern fails
	f.SetValue("email", "USER@EXAMPLE.COM")
	assert.Equal(t, []string{"pattern"}, f.ValidateField("email"))
	assert.Equal(t, "Formato inválido", f.ErrorMessage("email"))

	// structurally broken: both rules fail, the email message wins
	f.SetValue("email", "not-an-email")
	assert.Equal(t, []string{"email", "pattern"}, f.ValidateField("email"))
	assert.Equal(t, "Email no válido", f.ErrorMessage("email"))

	f.SetValue("email", "user@example.com")
	assert.Empty(t, f.ValidateField("email"))
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	f := validate.LoginForm()
	f.SetValue("email", "   ")
	violations := f.ValidateField("email")
	assert.Contains(t, violations, "required")
}
