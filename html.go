package markupweaver

import "io"

// HTML builds HTML documents. The element methods carry the closing
// policy HTML serialization requires: void elements always self-close and
// everything else is written as a pair, because a self-closed <div/> is
// not valid HTML. Start stays available, with the generic CloseNormal
// default, for names outside the curated vocabulary.
type HTML struct {
	Markup[*HTML]
}

var (
	_ Builder[*HTML] = (*HTML)(nil)
	_ Composer       = (*HTML)(nil)
)

// voidElements are the HTML elements that have no end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// NewHTML returns a builder emitting to w.
func NewHTML(w io.Writer, opts ...Option) *HTML {
	h := &HTML{}
	h.Init(h, w, opts...)
	return h
}

// NewHTMLFrom returns a builder spliced into parent's output stream. The
// writer is borrowed until Done; see Markup.InitFrom.
func NewHTMLFrom(parent Composer, opts ...Option) *HTML {
	h := &HTML{}
	h.InitFrom(h, parent, opts...)
	return h
}

// Doctype writes the HTML5 document type declaration. Call it before the
// first tag.
func (h *HTML) Doctype() *HTML {
	return h.RawLiteral("<!DOCTYPE html>")
}

// Element starts name with the policy its HTML kind requires: CloseSelf
// for void elements, ClosePair for everything else.
func (h *HTML) Element(name string) *HTML {
	if voidElements[name] {
		return h.StartWith(name, CloseSelf)
	}
	return h.StartWith(name, ClosePair)
}

// ===== Document & metadata =====

func (h *HTML) Html() *HTML    { return h.StartWith("html", ClosePair) }
func (h *HTML) Head() *HTML    { return h.StartWith("head", ClosePair) }
func (h *HTML) Title() *HTML   { return h.StartWith("title", ClosePair) }
func (h *HTML) Meta() *HTML    { return h.StartWith("meta", CloseSelf) }
func (h *HTML) LinkTag() *HTML { return h.StartWith("link", CloseSelf) }
func (h *HTML) Script() *HTML  { return h.StartWith("script", ClosePair) }
func (h *HTML) Style() *HTML   { return h.StartWith("style", ClosePair) }
func (h *HTML) Body() *HTML    { return h.StartWith("body", ClosePair) }

// ===== Sectioning =====

func (h *HTML) Header() *HTML  { return h.StartWith("header", ClosePair) }
func (h *HTML) Footer() *HTML  { return h.StartWith("footer", ClosePair) }
func (h *HTML) Main() *HTML    { return h.StartWith("main", ClosePair) }
func (h *HTML) Nav() *HTML     { return h.StartWith("nav", ClosePair) }
func (h *HTML) Section() *HTML { return h.StartWith("section", ClosePair) }
func (h *HTML) Article() *HTML { return h.StartWith("article", ClosePair) }
func (h *HTML) Aside() *HTML   { return h.StartWith("aside", ClosePair) }
func (h *HTML) H1() *HTML      { return h.StartWith("h1", ClosePair) }
func (h *HTML) H2() *HTML      { return h.StartWith("h2", ClosePair) }
func (h *HTML) H3() *HTML      { return h.StartWith("h3", ClosePair) }
func (h *HTML) H4() *HTML      { return h.StartWith("h4", ClosePair) }
func (h *HTML) H5() *HTML      { return h.StartWith("h5", ClosePair) }
func (h *HTML) H6() *HTML      { return h.StartWith("h6", ClosePair) }

// ===== Grouping =====

func (h *HTML) Div() *HTML        { return h.StartWith("div", ClosePair) }
func (h *HTML) P() *HTML          { return h.StartWith("p", ClosePair) }
func (h *HTML) Pre() *HTML        { return h.StartWith("pre", ClosePair) }
func (h *HTML) Blockquote() *HTML { return h.StartWith("blockquote", ClosePair) }
func (h *HTML) Ul() *HTML         { return h.StartWith("ul", ClosePair) }
func (h *HTML) Ol() *HTML         { return h.StartWith("ol", ClosePair) }
func (h *HTML) Li() *HTML         { return h.StartWith("li", ClosePair) }
func (h *HTML) Figure() *HTML     { return h.StartWith("figure", ClosePair) }
func (h *HTML) Figcaption() *HTML { return h.StartWith("figcaption", ClosePair) }

// ===== Text =====

func (h *HTML) Span() *HTML   { return h.StartWith("span", ClosePair) }
func (h *HTML) A() *HTML      { return h.StartWith("a", ClosePair) }
func (h *HTML) Strong() *HTML { return h.StartWith("strong", ClosePair) }
func (h *HTML) Em() *HTML     { return h.StartWith("em", ClosePair) }
func (h *HTML) Code() *HTML   { return h.StartWith("code", ClosePair) }
func (h *HTML) Small() *HTML  { return h.StartWith("small", ClosePair) }

// ===== Tables =====

func (h *HTML) Table() *HTML { return h.StartWith("table", ClosePair) }
func (h *HTML) Thead() *HTML { return h.StartWith("thead", ClosePair) }
func (h *HTML) Tbody() *HTML { return h.StartWith("tbody", ClosePair) }
func (h *HTML) Tr() *HTML    { return h.StartWith("tr", ClosePair) }
func (h *HTML) Th() *HTML    { return h.StartWith("th", ClosePair) }
func (h *HTML) Td() *HTML    { return h.StartWith("td", ClosePair) }

// ===== Forms =====

func (h *HTML) Form() *HTML      { return h.StartWith("form", ClosePair) }
func (h *HTML) Label() *HTML     { return h.StartWith("label", ClosePair) }
func (h *HTML) Input() *HTML     { return h.StartWith("input", CloseSelf) }
func (h *HTML) Button() *HTML    { return h.StartWith("button", ClosePair) }
func (h *HTML) Select() *HTML    { return h.StartWith("select", ClosePair) }
func (h *HTML) OptionTag() *HTML { return h.StartWith("option", ClosePair) }
func (h *HTML) Textarea() *HTML  { return h.StartWith("textarea", ClosePair) }

// ===== Void =====

func (h *HTML) Br() *HTML  { return h.StartWith("br", CloseSelf) }
func (h *HTML) Hr() *HTML  { return h.StartWith("hr", CloseSelf) }
func (h *HTML) Img() *HTML { return h.StartWith("img", CloseSelf) }

// ===== Attribute sugar =====
//
// Attributes whose names collide with element methods get an Attr suffix,
// the same way the element methods for link and option carry a Tag suffix.

func (h *HTML) ID(v string) *HTML          { return h.Attr("id", v) }
func (h *HTML) Class(v string) *HTML       { return h.Attr("class", v) }
func (h *HTML) Href(v string) *HTML        { return h.Attr("href", v) }
func (h *HTML) Src(v string) *HTML         { return h.Attr("src", v) }
func (h *HTML) Alt(v string) *HTML         { return h.Attr("alt", v) }
func (h *HTML) Name(v string) *HTML        { return h.Attr("name", v) }
func (h *HTML) Value(v string) *HTML       { return h.Attr("value", v) }
func (h *HTML) Type(v string) *HTML        { return h.Attr("type", v) }
func (h *HTML) Rel(v string) *HTML         { return h.Attr("rel", v) }
func (h *HTML) Action(v string) *HTML      { return h.Attr("action", v) }
func (h *HTML) Method(v string) *HTML      { return h.Attr("method", v) }
func (h *HTML) Placeholder(v string) *HTML { return h.Attr("placeholder", v) }
func (h *HTML) StyleAttr(v string) *HTML   { return h.Attr("style", v) }
func (h *HTML) TitleAttr(v string) *HTML   { return h.Attr("title", v) }
