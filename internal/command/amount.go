package command

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	amountFormat = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	firstNumber  = regexp.MustCompile(`\d+(\.\d+)?`)
	digitRun     = regexp.MustCompile(`\d+`)
)

// ParseAmount parses a raw token such as "50", "50.00" or "50,00" into a
// decimal. The token itself must have the amount format, so "R$50" fails.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	if !amountFormat.MatchString(raw) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func positiveAmount(raw string) (decimal.Decimal, bool) {
	d, ok := ParseAmount(raw)
	if !ok || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// scanNumber is the lenient test used by the investment scan. The format
// test runs on the token stripped to digits, dots and commas, and the value
// is parsed from the token with its first comma made a dot and everything
// but digits and dots removed.
func scanNumber(raw string) (decimal.Decimal, bool) {
	test := strings.Map(keep("0123456789.,"), raw)
	if !amountFormat.MatchString(test) {
		return decimal.Zero, false
	}
	value := strings.Map(keep("0123456789."), strings.Replace(raw, ",", ".", 1))
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func keep(allowed string) func(rune) rune {
	return func(r rune) rune {
		if strings.ContainsRune(allowed, r) {
			return r
		}
		return -1
	}
}

// isDateToken reports whether raw has the YYYY-MM-DD shape. It does not
// check that the date exists.
func isDateToken(raw string) bool {
	return datePattern.MatchString(raw)
}

// parseDate parses a YYYY-MM-DD token as midnight in loc.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if !isDateToken(raw) {
		return time.Time{}, extractErr(ReasonInvalidDate, raw)
	}
	d, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, extractErr(ReasonInvalidDate, raw)
	}
	return d, nil
}

// leadingValue returns the first number inside raw, as in "2L" or "1,5km".
func leadingValue(raw string) (decimal.Decimal, bool) {
	m := firstNumber.FindString(strings.Replace(raw, ",", ".", 1))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
