package yui

import (
	"fmt"
	"time"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
)

// nowFunc supplies the initial value of date and time fields.
var nowFunc = time.Now

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month in year.
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (year, month, day int, ok bool) {
	// time.Parse takes a signed year, so the zero-padded form is checked here.
	if len(s) != len(dateLayout) || s[0] < '0' || s[0] > '9' {
		return 0, 0, 0, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil || t.Year() < 1 {
		return 0, 0, 0, false
	}
	return t.Year(), int(t.Month()), t.Day(), true
}

// ParseTime validates an HH:MM:SS string in 24-hour form.
func ParseTime(s string) (hour, minute, second int, ok bool) {
	// The hour element accepts a single digit, so the length pins it to two.
	if len(s) != len(timeLayout) {
		return 0, 0, 0, false
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Hour(), t.Minute(), t.Second(), true
}

func (b *Base) strictInput() bool {
	return b.ui != nil && b.ui.cfg != nil && b.ui.cfg.Input.StrictDateTime
}

func (b *Base) rejectInput(value, format string) error {
	b.logger().Debug(logging.CategoryWidget, "invalid_input", "ignored malformed value", map[string]any{
		"widget": b.kind.String(),
		"value":  value,
	})
	if !b.strictInput() {
		return nil
	}
	return yerrors.Newf(yerrors.ErrCodeInvalidInput, "%q is not a valid %s value", value, format).
		WithContext("widget", b.kind.String())
}

// DateField edits a calendar date. Values are YYYY-MM-DD strings; it never
// posts events. Malformed values are ignored, or rejected with an
// invalid-input error when strict input is configured.
type DateField struct {
	Base
	label            string
	year, month, day int
}

func newDateField(ui *UI, label string) *DateField {
	now := nowFunc()
	f := &DateField{label: label, year: now.Year(), month: int(now.Month()), day: now.Day()}
	f.init(f, ui, KindDateField, -1)
	return f
}

func (f *DateField) focusable() {}

// Label returns the caption.
func (f *DateField) Label() string { return f.label }

// SetLabel changes the caption.
func (f *DateField) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Value returns the date as YYYY-MM-DD.
func (f *DateField) Value() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.year, f.month, f.day)
}

// SetValue stores a valid YYYY-MM-DD date. Invalid input leaves the value unchanged.
func (f *DateField) SetValue(s string) error {
	y, m, d, ok := ParseDate(s)
	if !ok {
		return f.rejectInput(s, "date")
	}
	f.year, f.month, f.day = y, m, d
	f.sync(AspectValue)
	return nil
}

// Parts returns year, month and day.
func (f *DateField) Parts() (year, month, day int) { return f.year, f.month, f.day }

// UserSetDate stores a date edited segment by segment, clamping month to
// 1..12 and day to the length of that month.
func (f *DateField) UserSetDate(year, month, day int) {
	year = clamp(year, 1, 9999)
	month = clamp(month, 1, 12)
	day = clamp(day, 1, DaysIn(year, month))
	f.year, f.month, f.day = year, month, day
}

// Order returns the segment order for the system locale.
func (f *DateField) Order() DateOrder {
	return DateOrderForLocale(SystemLocale())
}

// TimeField edits a time of day. Values are HH:MM:SS strings in 24-hour
// form; it never posts events.
type TimeField struct {
	Base
	label                string
	hour, minute, second int
}

func newTimeField(ui *UI, label string) *TimeField {
	now := nowFunc()
	f := &TimeField{label: label, hour: now.Hour(), minute: now.Minute(), second: now.Second()}
	f.init(f, ui, KindTimeField, -1)
	return f
}

func (f *TimeField) focusable() {}

// Label returns the caption.
func (f *TimeField) Label() string { return f.label }

// SetLabel changes the caption.
func (f *TimeField) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Value returns the time as HH:MM:SS.
func (f *TimeField) Value() string {
	return fmt.Sprintf("%02d:%02d:%02d", f.hour, f.minute, f.second)
}

// SetValue stores a valid HH:MM:SS time. Invalid input leaves the value unchanged.
func (f *TimeField) SetValue(s string) error {
	h, m, sec, ok := ParseTime(s)
	if !ok {
		return f.rejectInput(s, "time")
	}
	f.hour, f.minute, f.second = h, m, sec
	f.sync(AspectValue)
	return nil
}

// Parts returns hour, minute and second.
func (f *TimeField) Parts() (hour, minute, second int) { return f.hour, f.minute, f.second }

// UserSetTime stores a time edited segment by segment, clamping each part.
func (f *TimeField) UserSetTime(hour, minute, second int) {
	f.hour = clamp(hour, 0, 23)
	f.minute = clamp(minute, 0, 59)
	f.second = clamp(second, 0, 59)
}
