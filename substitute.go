package markupweaver

import (
	"fmt"
	"regexp"
	"strings"
)

// Substituter expands placeholders in text content, attribute names and
// attribute values using a builder's binding map.
type Substituter interface {
	Substitute(s string, bindings map[string]any) string
}

// SubstituterFunc adapts a plain function to the Substituter interface.
type SubstituterFunc func(s string, bindings map[string]any) string

// Substitute implements the Substituter interface.
func (f SubstituterFunc) Substitute(s string, bindings map[string]any) string {
	return f(s, bindings)
}

// varPattern matches ${name} placeholders and their $${name} escape form.
var varPattern = regexp.MustCompile(`\$\$?\{[^}]*\}`)

// SubstituteVars replaces every ${name} with the fmt.Sprint form of
// bindings[name]. The scan is a single pass, so replacement values are
// never re-expanded. A placeholder with no binding passes through
// verbatim, and $${name} always yields the literal ${name}. It is the
// default substituter for every builder.
func SubstituteVars(s string, bindings map[string]any) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return varPattern.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "$$") {
			return m[1:]
		}
		name := m[2 : len(m)-1]
		v, ok := bindings[name]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}
