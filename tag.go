package markupweaver

// tag is one pending element on the builder's stack. Its depth is fixed at
// push time; the flags are owned by the engine and make the start and end
// writes idempotent.
type tag struct {
	name   string
	depth  int
	policy ClosePolicy

	empty   bool // no content has been forced through yet
	started bool // start form written
	ended   bool // end form written, or folded into a self-close
}

// selfClosing reports whether the start form should be written as <name/>.
func (t *tag) selfClosing() bool { return t.empty && t.policy.selfCloses() }

// tagStack is the LIFO of tags whose end forms are still owed to the sink.
type tagStack []*tag

func (s *tagStack) push(t *tag) { *s = append(*s, t) }

func (s tagStack) peek() (*tag, bool) {
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

func (s *tagStack) pop() { *s = (*s)[:len(*s)-1] }
