package yui

import "strings"

// RichText displays HTML-like or plain markup. Activating a link posts a
// menu event whose ID is the link target.
type RichText struct {
	Base
	text           string
	plain          bool
	autoScrollDown bool
	shrinkable     bool
}

func newRichText(ui *UI, text string, plain bool) *RichText {
	r := &RichText{text: text, plain: plain}
	r.init(r, ui, KindRichText, -1)
	r.stretch = [2]bool{true, true}
	return r
}

func (r *RichText) focusable() {}

// Value returns the markup.
func (r *RichText) Value() string { return r.text }

// SetValue replaces the markup.
func (r *RichText) SetValue(text string) {
	r.text = text
	r.sync(AspectValue)
}

// PlainText reports whether the text is shown verbatim.
func (r *RichText) PlainText() bool { return r.plain }

// SetPlainText switches between markup and verbatim display.
func (r *RichText) SetPlainText(on bool) {
	r.plain = on
	r.sync(AspectValue)
}

// AutoScrollDown reports whether the view follows the end of the text.
func (r *RichText) AutoScrollDown() bool { return r.autoScrollDown }

// SetAutoScrollDown keeps the view scrolled to the bottom on updates.
func (r *RichText) SetAutoScrollDown(on bool) {
	r.autoScrollDown = on
	r.sync(AspectValue)
}

// Shrinkable reports whether the widget may be smaller than its content.
func (r *RichText) Shrinkable() bool { return r.shrinkable }

// SetShrinkable allows the widget to be smaller than its content.
func (r *RichText) SetShrinkable(on bool) {
	r.shrinkable = on
	r.sync(AspectLayout)
}

// ActivateLink posts a menu event carrying url verbatim.
func (r *RichText) ActivateLink(url string) {
	r.post(NewMenuEvent(r, nil, url), true)
}

// LogView is an append-only line buffer with an optional retention cap.
type LogView struct {
	Base
	label        string
	visibleLines int
	maxLines     int
	lines        []string
}

func newLogView(ui *UI, label string, visibleLines, maxLines int) *LogView {
	if visibleLines < 1 {
		visibleLines = 1
	}
	if maxLines < 0 {
		maxLines = 0
	}
	l := &LogView{label: label, visibleLines: visibleLines, maxLines: maxLines}
	l.init(l, ui, KindLogView, -1)
	l.stretch = [2]bool{true, true}
	return l
}

func (l *LogView) focusable() {}

// Label returns the caption.
func (l *LogView) Label() string { return l.label }

// SetLabel changes the caption.
func (l *LogView) SetLabel(label string) {
	l.label = label
	l.sync(AspectLabel)
}

// VisibleLines is the preferred height in lines.
func (l *LogView) VisibleLines() int { return l.visibleLines }

// MaxLines is the retention cap, 0 for unlimited.
func (l *LogView) MaxLines() int { return l.maxLines }

// SetMaxLines changes the retention cap and trims the buffer.
func (l *LogView) SetMaxLines(n int) {
	if n < 0 {
		n = 0
	}
	l.maxLines = n
	l.trim()
	l.sync(AspectValue)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func (l *LogView) trim() {
	if l.maxLines > 0 && len(l.lines) > l.maxLines {
		l.lines = append([]string(nil), l.lines[len(l.lines)-l.maxLines:]...)
	}
}

// AppendLines appends newline-separated text. A trailing newline does not
// add an empty line.
func (l *LogView) AppendLines(text string) {
	l.lines = append(l.lines, splitLines(text)...)
	l.trim()
	l.sync(AspectValue)
}

// SetLogText replaces the whole buffer.
func (l *LogView) SetLogText(text string) {
	l.lines = splitLines(text)
	l.trim()
	l.sync(AspectValue)
}

// ClearText empties the buffer.
func (l *LogView) ClearText() {
	l.lines = nil
	l.sync(AspectValue)
}

// LogText returns the buffer joined with newlines.
func (l *LogView) LogText() string { return strings.Join(l.lines, "\n") }

// Lines returns the number of buffered lines.
func (l *LogView) Lines() int { return len(l.lines) }

// LineSlice returns a copy of the buffered lines.
func (l *LogView) LineSlice() []string {
	return append([]string(nil), l.lines...)
}
