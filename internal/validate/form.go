package validate

// Field holds one input's current value and whether the user has
// interacted with it.  Touched gates error display only: an untouched
// field can be invalid, but its message is suppressed.
type Field struct {
	Name    string
	Value   string
	Touched bool
}

// Form is a named, ordered collection of fields with their rules.
// Field declaration order drives the order of collected error
// messages.
type Form struct {
	fields []Field
	rules  map[string][]Rule
	index  map[string]int
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{
		rules: make(map[string][]Rule),
		index: make(map[string]int),
	}
}

// AddField declares a field with its rules.  Redeclaring a name
// replaces its rules but keeps the original position.
func (f *Form) AddField(name string, rules ...Rule) {
	if _, ok := f.index[name]; !ok {
		f.index[name] = len(f.fields)
		f.fields = append(f.fields, Field{Name: name})
	}
	f.rules[name] = rules
}

// SetValue stores a new value for the field and marks it touched, the
// same way typing into an input does.
func (f *Form) SetValue(name, value string) {
	if i, ok := f.index[name]; ok {
		f.fields[i].Value = value
		f.fields[i].Touched = true
	}
}

// Value returns the field's current value ("" for unknown names).
func (f *Form) Value(name string) string {
	if i, ok := f.index[name]; ok {
		return f.fields[i].Value
	}
	return ""
}

// Touch marks a single field as interacted with.
func (f *Form) Touch(name string) {
	if i, ok := f.index[name]; ok {
		f.fields[i].Touched = true
	}
}

// TouchAll marks every field touched.  Submit handlers call this so
// messages for never-focused fields are no longer suppressed.
func (f *Form) TouchAll() {
	for i := range f.fields {
		f.fields[i].Touched = true
	}
}

// Field returns a copy of the named field's state.
func (f *Form) Field(name string) (Field, bool) {
	if i, ok := f.index[name]; ok {
		return f.fields[i], true
	}
	return Field{}, false
}

// ValidateField evaluates every rule of the named field against its
// current value and returns the names of the rules that fail, in rule
// declaration order.  The result is a fresh slice on every call; a nil
// result means the field is valid.
func (f *Form) ValidateField(name string) []string {
	i, ok := f.index[name]
	if !ok {
		return nil
	}
	var violated []string
	for _, r := range f.rules[name] {
		if !r.check(f.fields[i].Value, f) {
			violated = append(violated, r.name)
		}
	}
	return violated
}

// Valid reports whether every field passes all of its rules, touched
// or not.
func (f *Form) Valid() bool {
	for _, fl := range f.fields {
		if len(f.ValidateField(fl.Name)) > 0 {
			return false
		}
	}
	return true
}

// ruleArg returns the parameter of the first failing rule with the
// given violation name, for message interpolation (minlength).
func (f *Form) ruleArg(field, violation string) int {
	for _, r := range f.rules[field] {
		if r.name == violation {
			return r.arg
		}
	}
	return 0
}
