package ncurses

import (
	"fmt"

	"github.com/odvcencio/yui/pkg/yui"
)

// segment is one editable number of a date or time field.
type segment struct {
	part  int
	value int
	width int
	sep   string
}

func (s segment) text() string { return fmt.Sprintf("%0*d", s.width, s.value) }

const (
	partYear = iota
	partMonth
	partDay
)

// dateSegments orders year, month and day the way the locale writes them.
func dateSegments(order yui.DateOrder, year, month, day int) []segment {
	y := segment{part: partYear, value: year, width: 4}
	m := segment{part: partMonth, value: month, width: 2}
	d := segment{part: partDay, value: day, width: 2}
	switch order {
	case yui.OrderDMY:
		d.sep, m.sep = ".", "."
		return []segment{d, m, y}
	case yui.OrderMDY:
		m.sep, d.sep = "/", "/"
		return []segment{m, d, y}
	default:
		y.sep, m.sep = "-", "-"
		return []segment{y, m, d}
	}
}

func timeSegments(hour, minute, second int) []segment {
	return []segment{
		{part: 0, value: hour, width: 2, sep: ":"},
		{part: 1, value: minute, width: 2, sep: ":"},
		{part: 2, value: second, width: 2},
	}
}

// typeDigit shifts d into v, keeping at most width digits.
func typeDigit(v, width, d int) int {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}
	return (v*10 + d) % limit
}

// editSegments applies one key to segs[seg]. It returns false when the key
// is not a segment edit.
func editSegments(segs []segment, seg int, key string, r rune) bool {
	if seg < 0 || seg >= len(segs) {
		return false
	}
	s := &segs[seg]
	switch {
	case key == "Up":
		s.value++
	case key == "Down":
		s.value--
	case r >= '0' && r <= '9':
		s.value = typeDigit(s.value, s.width, int(r-'0'))
	default:
		return false
	}
	return true
}

func partsOf(segs []segment) [3]int {
	var out [3]int
	for _, s := range segs {
		out[s.part] = s.value
	}
	return out
}
