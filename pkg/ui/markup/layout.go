package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Line is one display row of laid-out rich text.
type Line struct {
	Indent int
	Spans  []Span
	Rule   bool
}

// Width returns the display width of the line including its indent.
func (l Line) Width() int {
	w := l.Indent
	for _, sp := range l.Spans {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// Text returns the line content without indent.
func (l Line) Text() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// LinkAt returns the link target at column x of the line.
func (l Line) LinkAt(x int) string {
	col := l.Indent
	for _, sp := range l.Spans {
		w := runewidth.StringWidth(sp.Text)
		if x >= col && x < col+w {
			return sp.Href
		}
		col += w
	}
	return ""
}

type word struct {
	spans []Span
	width int
	space bool // preceded by whitespace
}

// Layout wraps the document to width columns. Paragraphs and headings are
// separated by a blank line; list items and preformatted lines are not.
// Preformatted lines are never wrapped.
func (d *Document) Layout(width int) []Line {
	if width < 1 {
		width = 1
	}
	var out []Line
	prev := BlockKind(-1)
	for i, bl := range d.Blocks {
		if i > 0 && !bl.Continued && separated(prev, bl.Kind) {
			out = append(out, Line{})
		}
		prev = bl.Kind
		switch bl.Kind {
		case Rule:
			out = append(out, Line{Indent: bl.Indent, Rule: true})
		case Preformatted:
			out = append(out, Line{Indent: bl.Indent, Spans: bl.Spans})
		default:
			out = append(out, wrap(bl, width)...)
		}
	}
	return out
}

func separated(prev, next BlockKind) bool {
	if prev == Preformatted && next == Preformatted {
		return false
	}
	if prev == ListItem && next == ListItem {
		return false
	}
	return true
}

func wrap(bl Block, width int) []Line {
	indent := bl.Indent
	hang := indent
	var lead []Span
	if bl.Bullet != "" {
		lead = []Span{{Text: bl.Bullet}}
		hang += runewidth.StringWidth(bl.Bullet)
	}
	words := split(bl.Spans)

	var lines []Line
	cur := Line{Indent: indent, Spans: append([]Span(nil), lead...)}
	used := indent + runewidth.StringWidth(bl.Bullet)
	empty := true
	emit := func() {
		lines = append(lines, cur)
		cur = Line{Indent: hang}
		used = hang
		empty = true
	}
	for _, w := range words {
		gap := 0
		if !empty && w.space {
			gap = 1
		}
		if !empty && used+gap+w.width > width {
			emit()
			gap = 0
		}
		if gap == 1 {
			cur.Spans = appendSpan(cur.Spans, Span{Text: " "})
			used++
		}
		for _, sp := range w.spans {
			text := sp.Text
			for text != "" {
				tw := runewidth.StringWidth(text)
				if used+tw <= width {
					cur.Spans = appendSpan(cur.Spans, Span{Text: text, Attr: sp.Attr, Href: sp.Href})
					used += tw
					empty = false
					break
				}
				head, tail := cut(text, width-used)
				if head == "" {
					if !empty {
						emit()
						continue
					}
					_, size := utf8.DecodeRuneInString(text)
					head, tail = text[:size], text[size:]
				}
				cur.Spans = appendSpan(cur.Spans, Span{Text: head, Attr: sp.Attr, Href: sp.Href})
				empty = false
				emit()
				text = tail
			}
		}
	}
	if !empty || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// cut splits s so the head fits in w columns.
func cut(s string, w int) (string, string) {
	col := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if col+rw > w {
			return s[:i], s[i:]
		}
		col += rw
	}
	return s, ""
}

func appendSpan(spans []Span, sp Span) []Span {
	if n := len(spans); n > 0 && spans[n-1].Attr == sp.Attr && spans[n-1].Href == sp.Href {
		spans[n-1].Text += sp.Text
		return spans
	}
	return append(spans, sp)
}

// split breaks spans into words at spaces. A word may cross span
// boundaries when attributes change mid-word.
func split(spans []Span) []word {
	var words []word
	var cur *word
	pendingSpace := false
	for _, sp := range spans {
		start := 0
		for i, r := range sp.Text {
			if r != ' ' {
				continue
			}
			if i > start {
				cur = addPart(&words, cur, Span{Text: sp.Text[start:i], Attr: sp.Attr, Href: sp.Href}, pendingSpace)
				pendingSpace = false
			}
			cur = nil
			pendingSpace = true
			start = i + 1
		}
		if start < len(sp.Text) {
			cur = addPart(&words, cur, Span{Text: sp.Text[start:], Attr: sp.Attr, Href: sp.Href}, pendingSpace)
			pendingSpace = false
		}
	}
	return words
}

func addPart(words *[]word, cur *word, sp Span, space bool) *word {
	if cur == nil {
		*words = append(*words, word{space: space})
		cur = &(*words)[len(*words)-1]
	}
	cur.spans = append(cur.spans, sp)
	cur.width += runewidth.StringWidth(sp.Text)
	return cur
}

// Wrap word-wraps plain text to width columns. Explicit line breaks are
// kept and runs of spaces collapse to one.
func Wrap(text string, width int) []string {
	doc := &Document{}
	for _, line := range strings.Split(text, "\n") {
		doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Spans: []Span{{Text: line}}, Continued: true})
	}
	lines := doc.Layout(width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}
