package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const placeholder = "N/A"

var hundred = decimal.NewFromInt(100)

// finite unwraps v, rejecting nil, NaN and infinities.
func finite(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// FormatPrice renders a dollar amount with two decimals. Missing and
// non-positive prices render the placeholder.
func FormatPrice(price *float64) string {
	v, ok := finite(price)
	if !ok || v <= 0 {
		return placeholder
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// PercentChange is (predicted - current) / current * 100. It reports false
// when either operand is missing or current is zero.
func PercentChange(predicted, current *float64) (decimal.Decimal, bool) {
	p, ok := finite(predicted)
	if !ok {
		return decimal.Zero, false
	}
	c, ok := finite(current)
	if !ok || c == 0 {
		return decimal.Zero, false
	}
	cur := decimal.NewFromFloat(c)
	return decimal.NewFromFloat(p).Sub(cur).Div(cur).Mul(hundred), true
}

// FormatChange renders the signed percent change, e.g. "+10.00%".
// Zero is prefixed with "+".
func FormatChange(predicted, current *float64) string {
	change, ok := PercentChange(predicted, current)
	if !ok {
		return placeholder
	}
	rounded := change.Round(2)
	if rounded.IsNegative() {
		return rounded.StringFixed(2) + "%"
	}
	return "+" + rounded.StringFixed(2) + "%"
}

func ChangeClass(predicted, current *float64) string {
	change, ok := PercentChange(predicted, current)
	if !ok {
		return ""
	}
	if change.Round(2).IsNegative() {
		return "negative"
	}
	return "positive"
}

func ScoreTier(score *float64) string {
	v, ok := finite(score)
	switch {
	case !ok:
		return "low"
	case v >= 60:
		return "high"
	case v >= 40:
		return "medium"
	default:
		return "low"
	}
}

// FormatScore renders a score without trailing zeros.
func FormatScore(v *float64) string {
	n, ok := finite(v)
	if !ok {
		return placeholder
	}
	return decimal.NewFromFloat(n).String()
}

// FormatSignedPoints renders score contributions as "+12", "-3" or "0".
func FormatSignedPoints(v *float64) string {
	n, ok := finite(v)
	if !ok {
		return placeholder
	}
	if n > 0 {
		return "+" + decimal.NewFromFloat(n).String()
	}
	return decimal.NewFromFloat(n).String()
}

// FormatRatio renders a 0..1 confidence as a percentage with one decimal.
func FormatRatio(v *float64) string {
	n, ok := finite(v)
	if !ok {
		return placeholder
	}
	return decimal.NewFromFloat(n).Mul(hundred).StringFixed(1) + "%"
}

// BarWidth clamps a percentage to the 0..100 range of a progress bar.
func BarWidth(v *float64) float64 {
	n, ok := finite(v)
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(100, n))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders raw as an absolute UTC time with a relative
// suffix. Unparseable values are shown verbatim.
func FormatTimestamp(raw string, now time.Time) string {
	if strings.TrimSpace(raw) == "" {
		return placeholder
	}
	t, ok := ParseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.UTC().Format("Jan 2, 2006 15:04 MST") + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}

// HumanizeKey turns backend map keys like "cost_efficiency" into labels.
func HumanizeKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func orDefault(val any, fallback string) string {
	var s string
	switch v := val.(type) {
	case nil:
		return fallback
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
