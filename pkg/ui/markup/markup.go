// Package markup turns rich-text widget content into styled, wrapped lines
// for character-cell display. HTML is read with goquery, Markdown is first
// rendered to HTML with goldmark, and plain text is taken verbatim.
package markup

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// Attr is a set of inline text attributes.
type Attr uint8

const (
	Bold Attr = 1 << iota
	Italic
	Underline
	Code
	Heading
	LinkAttr
)

// Span is a run of text with uniform attributes. Href is set on links.
type Span struct {
	Text string
	Attr Attr
	Href string
}

// BlockKind classifies a block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	HeadingBlock
	ListItem
	Preformatted
	Rule
)

// Block is a paragraph-level element.
type Block struct {
	Kind   BlockKind
	Spans  []Span
	Indent int
	Bullet string

	// Continued blocks follow the previous one without a blank line.
	Continued bool
}

// Document is parsed rich text.
type Document struct {
	Blocks []Block
}

// Format is the source format of rich text.
type Format int

const (
	FormatPlain Format = iota
	FormatHTML
	FormatMarkdown
)

var tagPattern = regexp.MustCompile(`<(/?[a-zA-Z][a-zA-Z0-9]*)[^>]*>`)

// Detect guesses the format: text containing tags is HTML, anything else
// is Markdown.
func Detect(src string) Format {
	if tagPattern.MatchString(src) {
		return FormatHTML
	}
	return FormatMarkdown
}

// Parse reads src in the given format.
func Parse(src string, f Format) (*Document, error) {
	switch f {
	case FormatHTML:
		return ParseHTML(src)
	case FormatMarkdown:
		return ParseMarkdown(src)
	default:
		return ParsePlain(src), nil
	}
}

// ParsePlain keeps every line as written.
func ParsePlain(src string) *Document {
	doc := &Document{}
	for _, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		doc.Blocks = append(doc.Blocks, Block{Kind: Preformatted, Spans: []Span{{Text: line}}})
	}
	return doc
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ParseMarkdown renders src to HTML and parses that.
func ParseMarkdown(src string) (*Document, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return nil, err
	}
	return ParseHTML(buf.String())
}

// ParseHTML reads the HTML subset rich text uses: paragraphs, headings,
// lists, pre, br, hr, tables and the inline b, i, u, code and a tags.
// Unknown tags contribute their text.
func ParseHTML(src string) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	b := &builder{}
	gq.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			b.walk(n)
		}
	})
	b.flush()
	return &Document{Blocks: b.blocks}, nil
}

type builder struct {
	blocks  []Block
	cur     Block
	attrs   []Attr
	hrefs   []string
	indent  int
	pre     int
	ordinal []int
}

func (b *builder) attr() Attr {
	var a Attr
	for _, x := range b.attrs {
		a |= x
	}
	return a
}

func (b *builder) href() string {
	if len(b.hrefs) == 0 {
		return ""
	}
	return b.hrefs[len(b.hrefs)-1]
}

func (b *builder) text(s string) {
	if b.pre == 0 {
		s = collapseSpace(s)
		if s == "" {
			return
		}
		if len(b.cur.Spans) == 0 || endsWithSpace(b.cur.Spans) {
			s = strings.TrimLeft(s, " ")
		}
		if s == "" {
			return
		}
	}
	a, h := b.attr(), b.href()
	if n := len(b.cur.Spans); n > 0 && b.cur.Spans[n-1].Attr == a && b.cur.Spans[n-1].Href == h {
		b.cur.Spans[n-1].Text += s
		return
	}
	b.cur.Spans = append(b.cur.Spans, Span{Text: s, Attr: a, Href: h})
}

func endsWithSpace(spans []Span) bool {
	last := spans[len(spans)-1].Text
	return strings.HasSuffix(last, " ") || strings.HasSuffix(last, "\n")
}

func collapseSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// flush ends the current block.
func (b *builder) flush() {
	spans := b.cur.Spans
	if b.cur.Kind != Preformatted && len(spans) > 0 {
		last := &spans[len(spans)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text == "" {
			spans = spans[:len(spans)-1]
		}
	}
	if len(spans) > 0 || b.cur.Kind == Rule {
		b.cur.Spans = spans
		b.blocks = append(b.blocks, b.cur)
	}
	b.cur = Block{Kind: Paragraph, Indent: b.indent}
}

func (b *builder) start(kind BlockKind) {
	b.flush()
	b.cur.Kind = kind
}

func (b *builder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data)
		return
	case html.ElementNode:
	default:
		b.children(n)
		return
	}

	switch tag := strings.ToLower(n.Data); tag {
	case "p", "div", "blockquote", "center":
		b.flush()
		if tag == "blockquote" {
			b.indent += 2
			b.cur.Indent = b.indent
		}
		b.children(n)
		b.flush()
		if tag == "blockquote" {
			b.indent -= 2
			b.cur.Indent = b.indent
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.start(HeadingBlock)
		b.withAttr(Heading|Bold, n)
		b.flush()
	case "br":
		if b.pre > 0 {
			b.text("\n")
			return
		}
		kind, indent := b.cur.Kind, b.cur.Indent
		b.flush()
		if kind == ListItem {
			kind = Paragraph
			indent += 2
		}
		b.cur.Kind, b.cur.Indent = kind, indent
		b.cur.Continued = true
	case "hr":
		b.start(Rule)
		b.flush()
	case "pre":
		b.start(Preformatted)
		b.pre++
		b.withAttr(Code, n)
		b.pre--
		b.flushPre()
	case "ul", "ol", "dl":
		b.flush()
		b.indent += 2
		if tag == "ol" {
			b.ordinal = append(b.ordinal, 0)
		} else {
			b.ordinal = append(b.ordinal, -1)
		}
		b.children(n)
		b.flush()
		b.ordinal = b.ordinal[:len(b.ordinal)-1]
		b.indent -= 2
		b.cur.Indent = b.indent
	case "li", "dt", "dd":
		b.start(ListItem)
		b.cur.Indent = b.indent
		b.cur.Bullet = b.bullet()
		b.children(n)
		b.flush()
	case "tr":
		b.start(Paragraph)
		first := true
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if !first {
				b.text(" | ")
			}
			first = false
			if strings.EqualFold(c.Data, "th") {
				b.withAttr(Bold, c)
			} else {
				b.children(c)
			}
		}
		b.flush()
	case "b", "strong":
		b.withAttr(Bold, n)
	case "i", "em":
		b.withAttr(Italic, n)
	case "u", "ins":
		b.withAttr(Underline, n)
	case "code", "tt", "kbd":
		b.withAttr(Code, n)
	case "a":
		href := attrValue(n, "href")
		if href == "" {
			b.children(n)
			return
		}
		b.hrefs = append(b.hrefs, href)
		b.withAttr(LinkAttr|Underline, n)
		b.hrefs = b.hrefs[:len(b.hrefs)-1]
	case "script", "style", "head", "title":
	default:
		b.children(n)
	}
}

func (b *builder) bullet() string {
	if len(b.ordinal) == 0 {
		return "- "
	}
	top := len(b.ordinal) - 1
	if b.ordinal[top] < 0 {
		return "- "
	}
	b.ordinal[top]++
	return strconv.Itoa(b.ordinal[top]) + ". "
}

// flushPre splits the preformatted block into one block per line.
func (b *builder) flushPre() {
	var lines [][]Span
	line := []Span{}
	for _, sp := range b.cur.Spans {
		parts := strings.Split(sp.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				lines = append(lines, line)
				line = []Span{}
			}
			if p != "" {
				line = append(line, Span{Text: p, Attr: sp.Attr, Href: sp.Href})
			}
		}
	}
	lines = append(lines, line)
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for _, l := range lines {
		b.blocks = append(b.blocks, Block{Kind: Preformatted, Spans: l, Indent: b.indent})
	}
	b.cur = Block{Kind: Paragraph, Indent: b.indent}
}

func (b *builder) withAttr(a Attr, n *html.Node) {
	b.attrs = append(b.attrs, a)
	b.children(n)
	b.attrs = b.attrs[:len(b.attrs)-1]
}

func (b *builder) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// Links returns every link target in document order.
func (d *Document) Links() []string {
	var out []string
	for _, bl := range d.Blocks {
		for _, sp := range bl.Spans {
			if sp.Href != "" && (len(out) == 0 || out[len(out)-1] != sp.Href) {
				out = append(out, sp.Href)
			}
		}
	}
	return out
}

// Text returns the document without markup, one block per line.
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.Blocks))
	for _, bl := range d.Blocks {
		var sb strings.Builder
		sb.WriteString(bl.Bullet)
		for _, sp := range bl.Spans {
			sb.WriteString(sp.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
