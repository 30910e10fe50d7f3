package serializers

import (
	"sort"
	"strings"
)

// ValidationError maps a field name to every reason it was rejected.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func (e ValidationError) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e ValidationError) has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e ValidationError) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
