package forms

import (
	"fmt"
	"net/url"
)

// FacetForm validates a repeatable multi-value filter parameter (genres,
// creators) against the set of values currently present in the reference
// table. The choice set is loaded at construction time, not a fixed enum,
// so the data dependency stays explicit: load the live values, then bind.
type FacetForm struct {
	Field    string
	Selected []string
	choices  map[string]struct{}
	bound    bool
	errs     Errors
}

// NewFacetForm binds the named parameter against the supplied valid values.
// A form whose parameter is absent from the query string is unbound: it is
// neither applied nor in error.
func NewFacetForm(field string, valid []string, params url.Values) *FacetForm {
	f := &FacetForm{
		Field:   field,
		choices: make(map[string]struct{}, len(valid)),
		errs:    Errors{},
	}
	for _, v := range valid {
		f.choices[v] = struct{}{}
	}
	if _, ok := params[field]; !ok {
		return f
	}
	f.bound = true
	f.Selected = params[field]
	f.validate()
	return f
}

func (f *FacetForm) validate() {
	if len(f.Selected) == 0 {
		f.errs.Add(f.Field, "This field is required.")
		return
	}
	for _, v := range f.Selected {
		if _, ok := f.choices[v]; !ok {
			f.errs.Add(f.Field, fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", v))
		}
	}
}

func (f *FacetForm) Bound() bool {
	return f.bound
}

// Valid reports whether the facet should narrow the result set. An invalid
// facet is skipped, never fatal; other facets still apply independently.
func (f *FacetForm) Valid() bool {
	return f.bound && !f.errs.Has()
}

// Values returns the selections to filter on, or nil when the facet is not
// applied.
func (f *FacetForm) Values() []string {
	if !f.Valid() {
		return nil
	}
	return f.Selected
}

func (f *FacetForm) Errors() Errors {
	return f.errs
}
