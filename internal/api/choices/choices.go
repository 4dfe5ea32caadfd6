// Package choices maps between the human-facing labels used in query strings
// and the short codes stored in the database for enumerated media fields.
package choices

// Choice pairs a stored code with its human-facing label.
type Choice struct {
	Code  string
	Label string
}

// Set is an ordered list of the choices declared for one field.
type Set []Choice

var BookTypes = Set{
	{"TB", "Traditional book"},
	{"LN", "Light novel"},
	{"WN", "Web novel"},
	{"CS", "Comics"},
	{"MA", "Manga"},
	{"FF", "Fan fiction"},
}

var SeriesTypes = Set{
	{"SO", "Spin-off"},
	{"AY", "Anthology"},
	{"AD", "Adaptation"},
	{"AE", "Anime"},
}

var Statuses = Set{
	{"F", "Finished"},
	{"IP", "In progress"},
	{"D", "Dropped"},
}

// Decode returns the stored code whose label exactly equals the supplied
// human label, or "" when there is no match. Absent or unrecognized labels
// decode to "" so callers apply no filter rather than an empty one; the
// query string never carries raw codes.
func (s Set) Decode(label string) string {
	for _, c := range s {
		if c.Label == label {
			return c.Code
		}
	}
	return ""
}

// Contains reports whether code is one of the declared stored codes.
func (s Set) Contains(code string) bool {
	for _, c := range s {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Labels returns the human-facing labels in declaration order, for
// redisplaying filter widgets.
func (s Set) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, c := range s {
		labels = append(labels, c.Label)
	}
	return labels
}
