package yui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DateOrder is the order in which a date field shows its segments.
type DateOrder int

const (
	OrderYMD DateOrder = iota
	OrderDMY
	OrderMDY
)

func (o DateOrder) String() string {
	switch o {
	case OrderDMY:
		return "DMY"
	case OrderMDY:
		return "MDY"
	default:
		return "YMD"
	}
}

// SystemLocale returns the locale governing date formats, read from
// LC_ALL, LC_TIME and LANG in that order. It returns "" when unset.
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// DateFormatForLocale returns a strftime-style date format for a POSIX
// locale name such as "de_DE.UTF-8".
func DateFormatForLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "%Y-%m-%d"
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "%Y-%m-%d"
	}
	region, _ := tag.Region()
	switch region.String() {
	case "US", "PH", "BZ", "FM":
		return "%m/%d/%Y"
	case "CN", "JP", "KR", "TW", "HU", "SE", "LT", "CA", "MN", "IR":
		return "%Y-%m-%d"
	default:
		return "%d.%m.%Y"
	}
}

// DateOrderFromFormat derives the segment order from the position of the
// year, month and day directives in a strftime-style format.
func DateOrderFromFormat(format string) DateOrder {
	y := directiveIndex(format, "%Y", "%y", "%G")
	m := directiveIndex(format, "%m", "%b", "%B")
	d := directiveIndex(format, "%d", "%e")
	if y < 0 || m < 0 || d < 0 {
		return OrderYMD
	}
	switch {
	case y < m && m < d:
		return OrderYMD
	case m < d:
		return OrderMDY
	default:
		return OrderDMY
	}
}

func directiveIndex(format string, directives ...string) int {
	best := -1
	for _, dir := range directives {
		if i := strings.Index(format, dir); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

// DateOrderForLocale returns the date segment order for a locale name.
func DateOrderForLocale(locale string) DateOrder {
	return DateOrderFromFormat(DateFormatForLocale(locale))
}
