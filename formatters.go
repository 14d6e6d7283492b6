package strfmt

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/umt-kit/strfmt/value"
)

// Built-in formatter implementations. Numeric formatters read their input
// with value.ParseNumber, so "1e3", " 42 " and "0x10" are numbers.

// FormatterUpper implements the built-in `upper` formatter.
func FormatterUpper(v string, _ []string) string {
	return cases.Upper(language.Und).String(v)
}

// FormatterLower implements the built-in `lower` formatter.
func FormatterLower(v string, _ []string) string {
	return cases.Lower(language.Und).String(v)
}

// FormatterPad implements the built-in `pad(length, fill)` formatter. The
// value is left-padded to length characters (default 2) by repeating fill
// (default "0"), cutting the last repetition short when needed.
func FormatterPad(v string, args []string) string {
	length := 2
	if s := optArg(args, 0); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			length = n
		}
	}
	fill := "0"
	if len(args) > 1 && args[1] != "" {
		fill = args[1]
	}

	missing := length - utf8.RuneCountInString(v)
	if missing <= 0 {
		return v
	}
	fillRunes := []rune(fill)
	var b strings.Builder
	for i := 0; i < missing; i++ {
		b.WriteRune(fillRunes[i%len(fillRunes)])
	}
	b.WriteString(v)
	return b.String()
}

// FormatterPlural implements the built-in `plural(singular, plural)`
// formatter: singular when the value is 1 or -1, plural otherwise.
func FormatterPlural(v string, args []string) string {
	singular, plural := "", ""
	if len(args) > 0 {
		singular = args[0]
	}
	if len(args) > 1 {
		plural = args[1]
	}
	if math.Abs(value.ParseNumber(v)) == 1 {
		return singular
	}
	return plural
}

// FormatterMultiply implements the built-in `multiply(factor)` formatter.
// The factor defaults to 1.
func FormatterMultiply(v string, args []string) string {
	factor := 1.0
	if s := optArg(args, 0); s != "" {
		factor = value.ParseNumber(s)
	}
	return value.FormatNumber(value.ParseNumber(v) * factor)
}

// FormatterCurrency implements the built-in `currency(locale, code)`
// formatter. locale defaults to en-US and code to USD; the amount is
// rounded to the currency's standard fraction digits and grouped the way
// the locale groups numbers:
//
//	{price:currency}              // $1,234.56
//	{price:currency(ja-JP,JPY)}   // ￥1,234
//
// A value that is not a number or an unknown currency code leaves the
// value as it is.
func FormatterCurrency(v string, args []string) string {
	n := value.ParseNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return v
	}
	tag := parseLocale(optArg(args, 0))
	code := optArg(args, 1)
	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return v
	}
	scale, _ := currency.Standard.Rounding(unit)

	p := message.NewPrinter(tag)
	symbol := p.Sprintf("%v", currency.Symbol(unit))
	amount := p.Sprintf("%v", number.Decimal(math.Abs(n),
		number.MinFractionDigits(scale), number.MaxFractionDigits(scale)))
	if n < 0 && math.Round(-n*math.Pow10(scale)) > 0 {
		return "-" + symbol + amount
	}
	return symbol + amount
}

// FormatterNumber implements the built-in `number(locale, min, max)`
// formatter: locale-grouped decimal output with between min (default 0)
// and max (default 3, never less than min) fraction digits.
func FormatterNumber(v string, args []string) string {
	n := value.ParseNumber(v)
	if math.IsNaN(n) {
		return "NaN"
	}
	tag := parseLocale(optArg(args, 0))
	minFrac := clampDigits(atoiOr(optArg(args, 1), 0))
	maxFrac := clampDigits(atoiOr(optArg(args, 2), 3))
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(n,
		number.MinFractionDigits(minFrac), number.MaxFractionDigits(maxFrac)))
}

// FormatterDate implements the built-in `date(locale, style)` formatter.
// Styles are short (the default, 12/25/2023 for en-US), long
// (December 25, 2023), iso (2023-12-25T10:30:00.000Z, always UTC) and time.
// The value is read as RFC 3339 or a plain date or date-time; a plain date
// is taken as UTC and a date-time without offset as local time. Values that
// are not dates render as "Invalid Date".
func FormatterDate(v string, args []string) string {
	t, ok := parseDate(v)
	if !ok {
		return invalidDate
	}
	tag := parseLocale(optArg(args, 0))
	switch strings.ToLower(optArg(args, 1)) {
	case "iso":
		return t.UTC().Format(isoLayout)
	case "long":
		return t.Format(longDateLayout(tag))
	case "time":
		return t.Format(timeLayout(tag))
	default:
		return t.Format(shortDateLayout(tag))
	}
}

// FormatterTime implements the built-in `time(locale)` formatter:
// 10:30:00 AM for English locales, 10:30:00 elsewhere.
func FormatterTime(v string, args []string) string {
	t, ok := parseDate(v)
	if !ok {
		return invalidDate
	}
	return t.Format(timeLayout(parseLocale(optArg(args, 0))))
}

const (
	invalidDate = "Invalid Date"
	isoLayout   = "2006-01-02T15:04:05.000Z"
)

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func shortDateLayout(tag language.Tag) string {
	base, region := localeParts(tag)
	switch base {
	case "en":
		if region == "" || region == "US" || region == "PH" {
			return "1/2/2006"
		}
		return "02/01/2006"
	case "ja", "zh":
		return "2006/1/2"
	case "ko":
		return "2006. 1. 2."
	case "de", "ru", "pl", "cs", "fi", "nb", "da":
		return "2.1.2006"
	case "fr", "es", "it", "pt", "nl":
		return "02/01/2006"
	default:
		return time.DateOnly
	}
}

func longDateLayout(tag language.Tag) string {
	base, region := localeParts(tag)
	switch base {
	case "en":
		if region == "" || region == "US" {
			return "January 2, 2006"
		}
		return "2 January 2006"
	case "ja", "zh":
		return "2006年1月2日"
	case "ko":
		return "2006년 1월 2일"
	default:
		return shortDateLayout(tag)
	}
}

func timeLayout(tag language.Tag) string {
	if base, _ := localeParts(tag); base == "en" {
		return "3:04:05 PM"
	}
	return time.TimeOnly
}

func localeParts(tag language.Tag) (string, string) {
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No {
		return base.String(), ""
	}
	return base.String(), region.String()
}

// parseLocale reads a BCP 47 tag, falling back to en-US.
func parseLocale(s string) language.Tag {
	if s == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// optArg returns the trimmed argument at i, or "" when it is missing or
// was left empty.
func optArg(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return strings.TrimSpace(args[i])
}

func atoiOr(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func clampDigits(n int) int {
	return max(0, min(n, 20))
}
