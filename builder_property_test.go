//go:build property

package markupweaver

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBuilderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: whatever sequence of tags is started, the finished document
	// parses and contains exactly the started elements.
	properties.Property("documents close every tag they open", prop.ForAll(
		func(names []string) bool {
			if len(names) > 8 {
				return true
			}

			var b strings.Builder
			x := NewXML(&b)
			x.Start("root")
			for _, n := range names {
				x.Start(n).Text("x").End()
			}
			if x.Done() != nil {
				return false
			}

			dec := xml.NewDecoder(strings.NewReader(b.String()))
			starts := 0
			for {
				tok, err := dec.Token()
				if err == io.EOF {
					break
				}
				if err != nil {
					return false
				}
				if _, ok := tok.(xml.StartElement); ok {
					starts++
				}
			}
			return starts == len(names)+1
		},
		gen.SliceOf(gen.Identifier()),
	))

	// Property: escaping leaves no reserved character outside an entity.
	properties.Property("escaped text never leaks reserved characters", prop.ForAll(
		func(s string) bool {
			strip := strings.NewReplacer(
				"&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&apos;", "",
			)
			rest := strip.Replace(EscapeXML(s))
			return !strings.ContainsAny(rest, "&<>\"'")
		},
		gen.AnyString(),
	))

	// Property: a bound placeholder resolves, an unbound one passes through,
	// and the $$ form always escapes.
	properties.Property("placeholders resolve from bindings", prop.ForAll(
		func(name, value string) bool {
			ph := "${" + name + "}"
			bound := map[string]any{name: value}
			if SubstituteVars(ph, bound) != value {
				return false
			}
			if SubstituteVars(ph, map[string]any{}) != ph {
				return false
			}
			return SubstituteVars("$"+ph, bound) == ph
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	// Property: EndAll always lands on an empty stack without error.
	properties.Property("end all returns depth to zero", prop.ForAll(
		func(names []string) bool {
			if len(names) > 8 {
				return true
			}
			x := NewXML(io.Discard)
			for _, n := range names {
				x.Start(n)
			}
			x.EndAll()
			return x.Depth() == 0 && x.Err() == nil
		},
		gen.SliceOf(gen.Identifier()),
	))

	// Property: splicing children through a borrowed writer produces the
	// same bytes as building the nesting directly.
	properties.Property("splicing matches direct nesting", prop.ForAll(
		func(parent string, children []string) bool {
			if len(children) == 0 || len(children) > 6 {
				return true
			}

			var direct strings.Builder
			d := NewXML(&direct)
			d.Start(parent)
			for _, c := range children {
				d.Start(c).Text("x").End()
			}
			d.EndAll()
			if d.Done() != nil {
				return false
			}

			var spliced strings.Builder
			p := NewXML(&spliced)
			p.Start(parent)
			ch := NewXMLFrom(p)
			for _, c := range children {
				ch.Start(c).Text("x").End()
			}
			if ch.Done() != nil {
				return false
			}
			p.EndAll()
			if p.Done() != nil {
				return false
			}

			return direct.String() == spliced.String()
		},
		gen.Identifier(),
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
