package markupweaver

import (
	"io"
	"maps"
	"strings"
)

// Option configures a builder at construction time.
type Option func(*engine)

// WithEscaper replaces the escaper applied to text content and attribute
// values. The default is EscaperFunc(EscapeXML).
func WithEscaper(esc Escaper) Option {
	return func(e *engine) { e.esc = esc }
}

// WithSubstituter replaces the placeholder substituter. The default is
// SubstituterFunc(SubstituteVars).
func WithSubstituter(sub Substituter) Option {
	return func(e *engine) { e.sub = sub }
}

// WithIndent sets the string written per nesting level in front of every
// tag. The default is a single tab. An empty unit disables the
// newline-and-indent prefix entirely, producing single-line output.
func WithIndent(unit string) Option {
	return func(e *engine) { e.indent = unit }
}

// WithBindings seeds the builder's binding map.
func WithBindings(bindings map[string]any) Option {
	return func(e *engine) { maps.Copy(e.bindings, bindings) }
}

// ===== Engine =====

// engine is the emission state machine shared by every builder flavor: the
// stack of pending tags, the attribute store for the tag about to open,
// the binding map, and the possibly borrowed output writer.
//
// Writes are deferred. Starting a tag emits nothing; the tag is forced out
// by the first operation that needs it in the stream (content, a child
// tag, or its own end), which is what lets an empty tag collapse to a
// self-closed form. The first error sticks, and every mutating call after
// it is a no-op.
type engine struct {
	writer   io.Writer
	stack    tagStack
	attrs    attrList
	bindings map[string]any
	base     int     // depth offset inherited from a parent builder
	prev     *engine // builder the writer was borrowed from
	err      error

	esc    Escaper
	sub    Substituter
	indent string
}

func (e *engine) init(w io.Writer, opts ...Option) {
	*e = engine{
		writer:   w,
		bindings: make(map[string]any),
		esc:      EscaperFunc(EscapeXML),
		sub:      SubstituterFunc(SubstituteVars),
		indent:   "\t",
	}
	for _, o := range opts {
		o(e)
	}
}

// initFrom splices a child builder into parent's output stream. The
// parent's pending tag is flushed so the splice point is fixed, the writer
// moves to the child, and the parent has no write access until the child's
// done hands the writer back. Bindings are copied, not shared.
func (e *engine) initFrom(parent *engine, opts ...Option) {
	parent.flushPending()
	*e = engine{
		writer:   parent.writer,
		bindings: maps.Clone(parent.bindings),
		prev:     parent,
		err:      parent.err,
		esc:      parent.esc,
		sub:      parent.sub,
		indent:   parent.indent,
	}
	if t, ok := parent.stack.peek(); ok {
		e.base = 1 + t.depth + parent.base
	} else {
		e.base = parent.base
	}
	parent.writer = nil
	for _, o := range opts {
		o(e)
	}
}

// fail records err as the builder's sticky error. The first failure wins.
func (e *engine) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// write sends s to the writer. It is the single funnel every byte goes
// through: the sticky-error gate, the borrowed-writer check and the
// wrapping of I/O failures all live here.
func (e *engine) write(s string) {
	if e.err != nil {
		return
	}
	if e.writer == nil {
		e.fail(ErrWriterBusy)
		return
	}
	if _, err := io.WriteString(e.writer, s); err != nil {
		e.fail(&WriteError{Err: err})
	}
}

// prefix returns the newline-and-indent run written before a tag at the
// given stack depth. The output depth is base+depth, a pure function of
// nesting, so composed builders line up with their parents.
func (e *engine) prefix(depth int) string {
	if e.indent == "" {
		return ""
	}
	return "\n" + strings.Repeat(e.indent, e.base+depth)
}

// expand applies placeholder substitution with the current bindings.
func (e *engine) expand(s string) string {
	return e.sub.Substitute(s, e.bindings)
}

// start pushes a new pending tag, first forcing out whichever tag was
// pending before it.
func (e *engine) start(name string, policy ClosePolicy) {
	if e.err != nil {
		return
	}
	e.flushPending()
	e.stack.push(&tag{
		name:   name,
		depth:  len(e.stack),
		policy: policy,
		empty:  true,
	})
}

// flushPending writes the start form of the pending top-of-stack tag, if
// there is one. A CloseSelf tag is closed and popped in the same step; it
// never waits for children. The attribute store is cleared
// unconditionally, because it belonged to whatever tag was pending.
func (e *engine) flushPending() {
	if e.err == nil {
		if t, ok := e.stack.peek(); ok && t.empty && !t.ended {
			t.empty = t.policy.alwaysSelfCloses()
			e.openTag(t)
			if t.policy.alwaysSelfCloses() {
				e.end()
			}
		}
	}
	e.attrs.reset()
}

// openTag writes the start form of t: indent prefix, name, the stored
// attributes, and either /> or >. The started/ended flags make it
// idempotent.
func (e *engine) openTag(t *tag) {
	if t.started || t.ended {
		return
	}
	var sb strings.Builder
	sb.WriteString(e.prefix(t.depth))
	sb.WriteByte('<')
	sb.WriteString(t.name)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(e.expand(a.name))
		sb.WriteString(`="`)
		sb.WriteString(e.esc.Escape(e.expand(a.value)))
		sb.WriteByte('"')
	}
	if t.selfClosing() {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}
	e.write(sb.String())
	t.ended = t.selfClosing()
	t.started = true
}

// closeTag writes the end form of t unless the start form already closed
// it.
func (e *engine) closeTag(t *tag) {
	if t.ended {
		return
	}
	e.write(e.prefix(t.depth) + "</" + t.name + ">")
	t.ended = true
}

// end pops the innermost tag, writing its start form first if it is still
// pending and then whatever end form its policy calls for.
func (e *engine) end() {
	if e.err != nil {
		return
	}
	t, ok := e.stack.peek()
	if !ok {
		e.fail(ErrEmptyStack)
		return
	}
	e.openTag(t)
	e.closeTag(t)
	e.stack.pop()
	e.attrs.reset()
}

// endN ends up to n tags, stopping quietly when the stack runs out.
func (e *engine) endN(n int) {
	for ; n > 0 && e.err == nil && len(e.stack) > 0; n-- {
		e.end()
	}
}

// endAll ends every open tag.
func (e *engine) endAll() {
	for e.err == nil && len(e.stack) > 0 {
		e.end()
	}
}

// setAttrs stores name/value pairs for the tag about to open. An odd
// count is rejected before anything is stored.
func (e *engine) setAttrs(pairs []string) {
	if e.err != nil {
		return
	}
	if len(pairs)%2 != 0 {
		e.fail(&AttrCountError{Count: len(pairs)})
		return
	}
	for i := 0; i < len(pairs); i += 2 {
		e.attrs.set(pairs[i], pairs[i+1])
	}
}

// text forces the pending tag open and writes expanded, escaped content.
func (e *engine) text(s string) {
	if e.err != nil {
		return
	}
	e.flushPending()
	e.write(e.esc.Escape(e.expand(s)))
}

// raw forces the pending tag open and writes content unescaped; expand
// controls whether placeholder substitution still applies.
func (e *engine) raw(s string, expand bool) {
	if e.err != nil {
		return
	}
	e.flushPending()
	if expand {
		s = e.expand(s)
	}
	e.write(s)
}

// comment writes <!-- s --> as content at the current nesting depth.
func (e *engine) comment(s string) {
	if e.err != nil {
		return
	}
	e.flushPending()
	e.write(e.prefix(len(e.stack)) + "<!-- " + e.expand(s) + " -->")
}

func (e *engine) bind(name string, value any) {
	if e.err != nil {
		return
	}
	e.bindings[name] = value
}

func (e *engine) bindAll(bindings map[string]any) {
	if e.err != nil {
		return
	}
	maps.Copy(e.bindings, bindings)
}

func (e *engine) unbind(name string) {
	if e.err != nil {
		return
	}
	delete(e.bindings, name)
}

// done force-closes every open tag and, when the writer was borrowed from
// a parent, hands it back. The parent's slot must still be empty:
// returning the writer twice is a protocol violation.
func (e *engine) done() error {
	e.endAll()
	if e.prev != nil {
		if e.prev.writer != nil {
			e.fail(ErrWriterReturned)
		} else {
			e.prev.writer = e.writer
			e.writer = nil
		}
	}
	return e.err
}
