package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Pango renders the document as Pango markup, the format GTK labels
// accept. Links become <a href> so the label can report activation.
func (d *Document) Pango() string {
	var sb strings.Builder
	for i, bl := range d.Blocks {
		if i > 0 {
			if bl.Continued {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		switch bl.Kind {
		case Rule:
			sb.WriteString("――――――――")
			continue
		case ListItem:
			sb.WriteString(strings.Repeat("  ", bl.Indent))
			sb.WriteString(html.EscapeString(bl.Bullet))
		}
		var body strings.Builder
		for _, sp := range bl.Spans {
			body.WriteString(pangoSpan(sp))
		}
		switch bl.Kind {
		case HeadingBlock:
			sb.WriteString(`<span size="large" weight="bold">` + body.String() + `</span>`)
		case Preformatted:
			sb.WriteString("<tt>" + body.String() + "</tt>")
		default:
			sb.WriteString(body.String())
		}
	}
	return sb.String()
}

func pangoSpan(sp Span) string {
	s := html.EscapeString(sp.Text)
	if sp.Attr&Code != 0 {
		s = "<tt>" + s + "</tt>"
	}
	if sp.Attr&Italic != 0 {
		s = "<i>" + s + "</i>"
	}
	// Headings and links are styled by their container.
	if sp.Attr&Bold != 0 && sp.Attr&Heading == 0 {
		s = "<b>" + s + "</b>"
	}
	if sp.Attr&Underline != 0 && sp.Attr&LinkAttr == 0 {
		s = "<u>" + s + "</u>"
	}
	if sp.Href != "" {
		s = `<a href="` + html.EscapeString(sp.Href) + `">` + s + "</a>"
	}
	return s
}
