package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Significant-digit arithmetic for protocol-significant roundings. All of
// it runs on exact decimals; float formatting drifts on exactly the
// boundary digits the protocol cares about.

// msdPos returns the power of ten of the most significant digit, e.g.
// 2 for 123.45 and -4 for 0.000123.
func msdPos(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent() - 1
}

// RoundSig rounds half away from zero to n significant digits.
func RoundSig(d decimal.Decimal, n int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := int32(n-1) - msdPos(d)
	return d.Round(places)
}

// TruncSig truncates toward zero to n significant digits, never rounding.
func TruncSig(d decimal.Decimal, n int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := int32(n-1) - msdPos(d)
	if places >= 0 {
		return d.Truncate(places)
	}
	scale := decimal.New(1, -places)
	q, _ := d.QuoRem(scale, 0)
	return q.Mul(scale)
}

// formatSigTrunc renders d truncated to n significant digits in plain
// notation, zero-padded so exactly n digits are visible.
func formatSigTrunc(d decimal.Decimal, n int) string {
	if d.IsZero() {
		return "0"
	}
	places := int32(n-1) - msdPos(d)
	if places < 0 {
		places = 0
	}
	return TruncSig(d, n).StringFixed(places)
}

// TruncateStableAmount applies the stable-coin amount rule: format the
// amount truncated at eight significant digits, then drop the final
// character. The two stages both truncate, so kept digits never round up
// even when the first dropped digit is 5 or more. The asymmetry is part
// of the protocol and must not be collapsed into a single rounding.
func TruncateStableAmount(d decimal.Decimal) decimal.Decimal {
	s := formatSigTrunc(d, 8)
	if i := strings.IndexByte(s, '.'); i >= 0 && i < len(s)-1 {
		s = strings.TrimSuffix(s[:len(s)-1], ".")
	}
	out, err := decimal.NewFromString(s)
	if err != nil {
		return d
	}
	return out
}
