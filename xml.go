package markupweaver

import "io"

// XML is the generic markup flavor. Start carries no vocabulary knowledge,
// so the caller picks the closing policy where the CloseNormal default is
// not wanted.
type XML struct {
	Markup[*XML]
}

var (
	_ Builder[*XML] = (*XML)(nil)
	_ Composer      = (*XML)(nil)
)

// NewXML returns a builder emitting to w.
func NewXML(w io.Writer, opts ...Option) *XML {
	x := &XML{}
	x.Init(x, w, opts...)
	return x
}

// NewXMLFrom returns a builder spliced into parent's output stream. The
// writer is borrowed until Done; see Markup.InitFrom.
func NewXMLFrom(parent Composer, opts ...Option) *XML {
	x := &XML{}
	x.InitFrom(x, parent, opts...)
	return x
}

// Declaration writes the standard XML prolog. Call it before the first
// tag.
func (x *XML) Declaration() *XML {
	return x.RawLiteral(`<?xml version="1.0" encoding="UTF-8"?>`)
}

// CData writes s inside a CDATA section, with no escaping and no
// substitution. The text must not contain "]]>".
func (x *XML) CData(s string) *XML {
	return x.RawLiteral("<![CDATA[" + s + "]]>")
}
