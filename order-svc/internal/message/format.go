package message

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const scheduledLayout = "02/01/2006 3:04 PM"

var inputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// FormatQuantity renders the shortest decimal form of q, so whole numbers
// carry no fraction and other values keep every significant digit.
func FormatQuantity(q float64) string {
	return decimal.NewFromFloat(q).String()
}

// FormatMoney always uses exactly two decimal digits.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// ParseScheduled accepts datetime-local input ("2006-01-02T15:04") in loc, or RFC 3339.
func ParseScheduled(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range inputLayouts {
		var t time.Time
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, loc)
		}
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, err
}

// FormatScheduled renders DD/MM/YYYY h:mm AM/PM. Input it cannot parse is
// returned unchanged.
func FormatScheduled(value string, loc *time.Location) string {
	if value == "" {
		return ""
	}
	t, err := ParseScheduled(value, loc)
	if err != nil {
		return value
	}
	return t.Format(scheduledLayout)
}
