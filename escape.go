package markupweaver

import "strings"

// Escaper converts reserved markup characters in text content and
// attribute values to their entity forms.
type Escaper interface {
	Escape(s string) string
}

// EscaperFunc adapts a plain function to the Escaper interface.
type EscaperFunc func(s string) string

// Escape implements the Escaper interface.
func (f EscaperFunc) Escape(s string) string { return f(s) }

var xmlEntities = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML substitutes the five predefined XML entities. It is the
// default escaper for every builder and is safe for both text content and
// double-quoted attribute values.
func EscapeXML(s string) string { return xmlEntities.Replace(s) }
