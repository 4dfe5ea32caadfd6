package forms

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxSearchLen = 255

// SearchForm holds the single free-text search field of a list endpoint
// (title for media, name for genres, first_name for creators, username for
// users). Blank or absent input is a no-op, not an error.
type SearchForm struct {
	Field string
	Value string
	errs  Errors
}

// NewSearchForm binds the named query parameter. The only way the form can
// be invalid is an over-long value.
func NewSearchForm(field string, params url.Values) *SearchForm {
	f := &SearchForm{
		Field: field,
		Value: strings.TrimSpace(params.Get(field)),
		errs:  Errors{},
	}
	if utf8.RuneCountInString(f.Value) > maxSearchLen {
		f.errs.Add(field, "Ensure this value has at most 255 characters.")
	}
	return f
}

func (f *SearchForm) Valid() bool {
	return !f.errs.Has()
}

// Query returns the substring to filter on, or "" when the search should not
// be applied.
func (f *SearchForm) Query() string {
	if !f.Valid() {
		return ""
	}
	return f.Value
}

func (f *SearchForm) Errors() Errors {
	return f.errs
}
