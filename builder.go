package markupweaver

import "io"

// Builder is the narrow fluent contract every markup builder satisfies.
// Flavor-specific helpers, such as the HTML element methods, are sugar
// over these operations.
type Builder[T any] interface {
	Start(name string) T
	StartWith(name string, policy ClosePolicy) T
	Attr(pairs ...string) T
	Text(s string) T
	Raw(s string) T
	End() T
	Bind(name string, value any) T
}

// Composer is any builder whose output stream a child builder can take
// over mid-document. Every type embedding Markup satisfies it.
type Composer interface {
	core() *engine
}

// Markup is the emission core shared by all builder flavors. A flavor
// embeds Markup parameterized with its own pointer type and passes itself
// to Init or InitFrom, so every chained call keeps returning the flavor:
//
//	type Feed struct {
//		markupweaver.Markup[*Feed]
//	}
//
//	func NewFeed(w io.Writer) *Feed {
//		f := &Feed{}
//		f.Init(f, w)
//		return f
//	}
//
// The zero value is not usable; Init or InitFrom must run first. A builder
// is single-threaded: it may move between goroutines, but concurrent calls
// on one chain are not synchronized.
type Markup[T any] struct {
	self T
	eng  engine
}

// Init prepares the builder to write to w. Flavor constructors call it
// with the flavor itself as self.
func (m *Markup[T]) Init(self T, w io.Writer, opts ...Option) {
	m.self = self
	m.eng.init(w, opts...)
}

// InitFrom prepares the builder to continue parent's document. The
// parent's pending tag is flushed, its writer moves to this builder until
// Done, its bindings are copied, and nesting continues below the parent's
// innermost open tag.
func (m *Markup[T]) InitFrom(self T, parent Composer, opts ...Option) {
	m.self = self
	m.eng.initFrom(parent.core(), opts...)
}

// Start pushes a new pending tag with the CloseNormal policy. Nothing is
// written until a later call forces the tag out.
func (m *Markup[T]) Start(name string) T {
	m.eng.start(name, CloseNormal)
	return m.self
}

// StartWith pushes a new pending tag with an explicit closing policy.
func (m *Markup[T]) StartWith(name string, policy ClosePolicy) T {
	m.eng.start(name, policy)
	return m.self
}

// Attr stores name/value pairs for the tag most recently started. Pairs
// recorded after the tag was forced out are dropped when the next tag
// flushes. Attribute names and values run through placeholder
// substitution, and values are escaped.
func (m *Markup[T]) Attr(pairs ...string) T {
	m.eng.setAttrs(pairs)
	return m.self
}

// Text writes escaped character data, forcing the pending tag open first.
// Placeholders are substituted before escaping.
func (m *Markup[T]) Text(s string) T {
	m.eng.text(s)
	return m.self
}

// Raw writes s without escaping. Placeholders are still substituted; use
// RawLiteral to suppress that as well.
func (m *Markup[T]) Raw(s string) T {
	m.eng.raw(s, true)
	return m.self
}

// RawLiteral writes s exactly as given: no escaping, no substitution.
func (m *Markup[T]) RawLiteral(s string) T {
	m.eng.raw(s, false)
	return m.self
}

// Comment writes <!-- s --> at the current nesting depth. The text is
// substituted but not escaped, so it must not contain "--".
func (m *Markup[T]) Comment(s string) T {
	m.eng.comment(s)
	return m.self
}

// End closes the innermost open tag. Ending with nothing open records
// ErrEmptyStack.
func (m *Markup[T]) End() T {
	m.eng.end()
	return m.self
}

// EndN closes up to n tags, stopping quietly if the stack empties first.
func (m *Markup[T]) EndN(n int) T {
	m.eng.endN(n)
	return m.self
}

// EndAll closes every open tag.
func (m *Markup[T]) EndAll() T {
	m.eng.endAll()
	return m.self
}

// Bind associates name with a value for ${name} substitution.
func (m *Markup[T]) Bind(name string, value any) T {
	m.eng.bind(name, value)
	return m.self
}

// BindAll binds every entry of the given map.
func (m *Markup[T]) BindAll(bindings map[string]any) T {
	m.eng.bindAll(bindings)
	return m.self
}

// Unbind removes a binding. Placeholders for the name pass through
// verbatim afterwards.
func (m *Markup[T]) Unbind(name string) T {
	m.eng.unbind(name)
	return m.self
}

// Depth returns the number of currently open tags.
func (m *Markup[T]) Depth() int { return len(m.eng.stack) }

// Err returns the first error the chain ran into, or nil. Once set, every
// mutating call is a no-op.
func (m *Markup[T]) Err() error { return m.eng.err }

// Done force-closes all open tags and reports the chain's first error.
// A builder created with InitFrom also returns the borrowed writer, so
// the parent can resume writing.
func (m *Markup[T]) Done() error { return m.eng.done() }

// core exposes the engine to the composition bridge.
func (m *Markup[T]) core() *engine { return &m.eng }
