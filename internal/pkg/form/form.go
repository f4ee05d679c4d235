// Package form holds the editable draft of a single record. Fields are
// described by a Schema so employees and leaves share one form model.
package form

import (
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
)

type Kind string

const (
	KindText   Kind = "text"
	KindDate   Kind = "date"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []string
}

type Schema []Field

// Field returns the named field.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Blank returns a draft with every field set to "".
func (s Schema) Blank() Draft {
	d := make(Draft, len(s))
	for _, f := range s {
		d[f.Name] = ""
	}
	return d
}

// Seed builds a draft from values, keeping only schema fields. Missing
// fields default to "".
func (s Schema) Seed(values map[string]string) Draft {
	d := s.Blank()
	for name := range d {
		if v, ok := values[name]; ok {
			d[name] = v
		}
	}
	return d
}

// Draft is the unsaved field values of one record, keyed by field name.
type Draft map[string]string

func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// FieldValue pairs a field with its draft value for rendering.
type FieldValue struct {
	Field
	Value string
	Error string
}

type Form struct {
	schema Schema
	draft  Draft
	errors map[string]string
}

func New(schema Schema, draft Draft) *Form {
	return &Form{
		schema: schema,
		draft:  schema.Seed(draft),
	}
}

// Set updates one draft field. Names outside the schema are ignored.
func (f *Form) Set(name, value string) bool {
	if _, ok := f.schema.Field(name); !ok {
		return false
	}
	f.draft[name] = value
	return true
}

// SetAll applies every known field in values.
func (f *Form) SetAll(values map[string]string) {
	for name, value := range values {
		f.Set(name, value)
	}
}

func (f *Form) Draft() Draft {
	return f.draft.Clone()
}

// Validate checks required fields and remembers the failures for Fields.
func (f *Form) Validate() error {
	var errs validator.ValidationErrors
	for _, field := range f.schema {
		if !field.Required {
			continue
		}
		if err := validator.Required(field.Name, field.Label, f.draft[field.Name]); err != nil {
			errs = append(errs, *err)
		}
	}

	if len(errs) > 0 {
		f.errors = errs.ToMap()
		return errs
	}
	f.errors = nil
	return nil
}

// Reject records errors that were detected outside the required check,
// such as a draft value the record codec could not convert.
func (f *Form) Reject(errs validator.ValidationErrors) {
	if f.errors == nil {
		f.errors = make(map[string]string)
	}
	for _, e := range errs {
		f.errors[e.Field] = e.Message
	}
}

func (f *Form) Fields() []FieldValue {
	out := make([]FieldValue, 0, len(f.schema))
	for _, field := range f.schema {
		out = append(out, FieldValue{
			Field: field,
			Value: f.draft[field.Name],
			Error: f.errors[field.Name],
		})
	}
	return out
}
