// Package forms validates the list-filtering query parameters and the mutate
// payloads' field-level rules. Invalid facet forms never fail a list request;
// the offending facet is simply not applied and its errors are surfaced for
// redisplay.
package forms

// Errors collects field-level validation messages, keyed by field name.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Has() bool {
	return len(e) > 0
}
