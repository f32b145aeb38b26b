package markup

import (
	"reflect"
	"testing"
)

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

func mustHTML(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseHTML(src)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	return doc
}

func TestParseHTMLInline(t *testing.T) {
	doc := mustHTML(t, "<h1>Title</h1><p>Hello <b>bold</b> world</p>")
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind != HeadingBlock || doc.Blocks[0].Spans[0].Attr&Heading == 0 {
		t.Errorf("first block = %+v, want heading", doc.Blocks[0])
	}
	want := []Span{{Text: "Hello "}, {Text: "bold", Attr: Bold}, {Text: " world"}}
	if !reflect.DeepEqual(doc.Blocks[1].Spans, want) {
		t.Errorf("spans = %+v, want %+v", doc.Blocks[1].Spans, want)
	}
	if got := doc.Text(); got != "Title\nHello bold world" {
		t.Errorf("Text() = %q", got)
	}
}

func TestLinks(t *testing.T) {
	doc := mustHTML(t, `<p>See <a href="https://example.org">docs</a> and <a href="mailto:a@b">mail</a>.</p>`)
	want := []string{"https://example.org", "mailto:a@b"}
	if got := doc.Links(); !reflect.DeepEqual(got, want) {
		t.Errorf("Links() = %v, want %v", got, want)
	}
}

func TestLists(t *testing.T) {
	doc := mustHTML(t, "<ul><li>one</li><li>two</li></ul><ol><li>a</li><li>b</li></ol>")
	if got := doc.Text(); got != "- one\n- two\n1. a\n2. b" {
		t.Errorf("Text() = %q", got)
	}
	if doc.Blocks[0].Indent != 2 {
		t.Errorf("indent = %d, want 2", doc.Blocks[0].Indent)
	}
}

func TestParseMarkdown(t *testing.T) {
	doc, err := ParseMarkdown("# Title\n\nSome *emphasis* and `code`.\n\n- item one\n- item two\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "Title\nSome emphasis and code.\n- item one\n- item two"
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	var sawItalic, sawCode bool
	for _, sp := range doc.Blocks[1].Spans {
		sawItalic = sawItalic || sp.Attr&Italic != 0
		sawCode = sawCode || sp.Attr&Code != 0
	}
	if !sawItalic || !sawCode {
		t.Errorf("attributes lost: %+v", doc.Blocks[1].Spans)
	}
}

func TestPreformatted(t *testing.T) {
	doc := mustHTML(t, "<pre>line 1\n  indented\n</pre>")
	got := lineTexts(doc.Layout(4))
	want := []string{"line 1", "  indented"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestLayoutWraps(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		width int
		want  []string
	}{
		{"words", "<p>the quick brown fox jumps</p>", 10, []string{"the quick", "brown fox", "jumps"}},
		{"long word", "<p>abcdefghij</p>", 4, []string{"abcd", "efgh", "ij"}},
		{"wide runes", "<p>日本語</p>", 4, []string{"日本", "語"}},
		{"paragraph gap", "<h1>T</h1><p>x</p>", 10, []string{"T", "", "x"}},
		{"line break", "<p>one<br>two</p>", 10, []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(mustHTML(t, tt.src).Layout(tt.width))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutHangingIndent(t *testing.T) {
	lines := mustHTML(t, "<ul><li>alpha beta gamma</li></ul>").Layout(12)
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lineTexts(lines))
	}
	if lines[0].Indent != 2 || lines[0].Text() != "- alpha" {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Indent != 4 || lines[1].Text() != "beta" {
		t.Errorf("continuation = %+v", lines[1])
	}
}

func TestLinkAt(t *testing.T) {
	lines := mustHTML(t, `<p>go <a href="u">here</a></p>`).Layout(40)
	if got := lines[0].LinkAt(3); got != "u" {
		t.Errorf("LinkAt(3) = %q, want u", got)
	}
	if got := lines[0].LinkAt(0); got != "" {
		t.Errorf("LinkAt(0) = %q, want empty", got)
	}
}

func TestDetectAndPlain(t *testing.T) {
	if Detect("<b>x</b>") != FormatHTML {
		t.Error("tags should detect as HTML")
	}
	if Detect("a < b and *md*") != FormatMarkdown {
		t.Error("text without tags should detect as Markdown")
	}
	doc, err := Parse("a\n\nb", FormatPlain)
	if err != nil {
		t.Fatal(err)
	}
	if got := lineTexts(doc.Layout(10)); !reflect.DeepEqual(got, []string{"a", "", "b"}) {
		t.Errorf("plain lines = %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three\n\nfour", 7)
	want := []string{"one two", "three", "", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestPango(t *testing.T) {
	doc := mustHTML(t, `<h2>Intro</h2><p>a &lt; b <b>bold</b> <a href="help">more</a></p>`)
	want := `<span size="large" weight="bold">Intro</span>` + "\n\n" +
		`a &lt; b <b>bold</b> <a href="help">more</a>`
	if got := doc.Pango(); got != want {
		t.Errorf("Pango() = %q, want %q", got, want)
	}
}
