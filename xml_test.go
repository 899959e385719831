package markupweaver

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_XML_Declaration(t *testing.T) {
	var b strings.Builder
	x := NewXML(&b)
	x.Declaration().Start("feed").End()
	require.NoError(t, x.Done())
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<feed/>", b.String())
}

func Test_XML_CData(t *testing.T) {
	var b strings.Builder
	x := NewXML(&b)
	x.Start("summary").CData("a <b> & c").End()
	require.NoError(t, x.Done())
	assert.Equal(t, "\n<summary><![CDATA[a <b> & c]]>\n</summary>", b.String())
}

func Test_XML_Golden(t *testing.T) {
	var b strings.Builder
	x := NewXML(&b)
	x.Start("catalog").
		Start("book").Attr("isbn", "123").
		Start("title").Text("Go").End().
		Start("price").Text("42").End().
		End().
		EndAll()
	require.NoError(t, x.Done())

	want := `
<catalog>
	<book isbn="123">
		<title>Go
		</title>
		<price>42
		</price>
	</book>
</catalog>`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func Test_XML_RoundTrip(t *testing.T) {
	var b strings.Builder
	x := NewXML(&b, WithIndent(""))
	x.Declaration().
		Start("feed").Attr("version", "1.0").
		Start("entry").Attr("id", "e1").
		Start("title").Text("Hello & goodbye").End().
		End().
		Start("entry").Attr("id", "e2").
		EndAll()
	require.NoError(t, x.Done())

	type entry struct {
		ID    string `xml:"id,attr"`
		Title string `xml:"title"`
	}
	type feed struct {
		Version string  `xml:"version,attr"`
		Entries []entry `xml:"entry"`
	}
	var f feed
	require.NoError(t, xml.Unmarshal([]byte(b.String()), &f))
	assert.Equal(t, "1.0", f.Version)
	require.Len(t, f.Entries, 2)
	assert.Equal(t, "e1", f.Entries[0].ID)
	assert.Equal(t, "Hello & goodbye", f.Entries[0].Title)
	assert.Equal(t, "e2", f.Entries[1].ID)
	assert.Empty(t, f.Entries[1].Title)
}

func Test_XML_Indented_Output_Parses(t *testing.T) {
	var b strings.Builder
	x := NewXML(&b)
	x.Declaration().
		Start("report").
		Start("row").Attr("n", "1").Text("alpha").End().
		Start("row").Attr("n", "2").CData("two < three").End().
		Comment("trailing").
		EndAll()
	require.NoError(t, x.Done())

	dec := xml.NewDecoder(strings.NewReader(b.String()))
	var elements int
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if _, ok := tok.(xml.StartElement); ok {
			elements++
		}
	}
	assert.Equal(t, 3, elements)
}
