// Package markupweaver builds XML and HTML as a stream: a fluent builder
// writes tags to an io.Writer as the calling code walks the document, so
// no tree is held in memory.
//
// Tag emission is deferred. Start records a pending tag and writes
// nothing; the tag is forced out by the first operation that fixes its
// place in the stream, which is what lets attributes be added after Start
// and lets an empty tag collapse to its self-closed form:
//
//	var b strings.Builder
//	x := markupweaver.NewXML(&b)
//	x.Start("feed").Attr("version", "1.0").
//		Start("entry").Attr("id", "e1").Text("hello").End().
//		Start("entry").Attr("id", "e2").
//		EndAll()
//	if err := x.Done(); err != nil {
//		log.Fatal(err)
//	}
//
// Every tag is written on its own line, indented one unit per nesting
// level, so output begins with a newline. The second entry above stays
// empty and is emitted as <entry id="e2"/>.
//
// Text and attribute values may carry ${name} placeholders resolved from
// the builder's bindings (Bind, BindAll, WithBindings). Content passed to
// Text and to attribute values is escaped with the five predefined XML
// entities; Raw and RawLiteral bypass escaping.
//
// A document can be assembled from parts with NewXMLFrom and NewHTMLFrom:
// the child builder borrows the parent's writer and continues at the
// parent's nesting depth, and Done returns the writer to the parent. A
// builder with a writer on loan cannot write.
//
// Builders do not panic and their methods return no intermediate errors.
// The first failure is recorded, every later call becomes a no-op, and the
// error surfaces from Err or Done.
package markupweaver
