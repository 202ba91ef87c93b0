package validate

// LoginForm builds the login form with the client's rule set.
func LoginForm() *Form {
	f := NewForm()
	f.AddField("email", Required(), Email(), EmailPattern())
	f.AddField("password", Required(), MinLength(6))
	return f
}

// RegistrationForm builds the account creation form.  The password
// confirmation carries the cross-field Matches rule, so a mismatch is
// reported on confirm_password and never on password itself.
func RegistrationForm() *Form {
	f := NewForm()
	f.AddField("nombre", Required(), MinLength(2), Letters())
	f.AddField("apellido", Required(), MinLength(2), Letters())
	f.AddField("email", Required(), Email(), EmailPattern())
	f.AddField("telefono", Required(), Phone())
	f.AddField("fecha_nacimiento", Required())
	f.AddField("password", Required(), MinLength(8), PasswordComplexity())
	f.AddField("confirm_password", Required(), Matches("password"))
	f.AddField("terminos", RequiredTrue())
	return f
}
