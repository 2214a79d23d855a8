package ufrac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse parses a fraction written either as "n/d" (see ParseRationalString)
// or as a decimal number (see ParseDecimalString).
func Parse(s string) (Fraction, error) {
	if strings.Contains(s, "/") {
		return ParseRationalString(s)
	}
	return ParseDecimalString(s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Fraction {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// ParseRationalString parses a string representation of a fraction.
// The string must be in the form "n/d", where n and d are unsigned integers
// in base 10 and d is not zero.
// It is not necessary for n/d to be in lowest terms, but the result will be.
func ParseRationalString(s string) (Fraction, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 2 {
		return Fraction{}, ErrFmtInvalid
	}
	num, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return Try(num, den)
}

// ParseDecimalString parses a decimal number such as "12", "0.25" or "1e-3"
// into the exactly equal fraction. Negative numbers are rejected with
// ErrNegative, and numbers whose reduced form needs more than 64 bits in
// either part are rejected with an overflow error.
func ParseDecimalString(s string) (Fraction, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %v", ErrFmtInvalid, err)
	}
	if d.Sign() < 0 {
		return Fraction{}, ErrNegative
	}
	if d.IsZero() {
		return Fraction{}, nil
	}
	// reject exponents that cannot fit before Rat expands 10^exp
	exp := int64(d.Exponent())
	if exp >= 20 {
		// a non-zero coefficient times 10^20 exceeds 2^64-1
		return Fraction{}, ErrNumOverflow
	}
	if -exp-int64(len(s)) > 64 {
		// the coefficient cancels fewer than len(s) factors of 10,
		// leaving a denominator of at least 2^65
		return Fraction{}, ErrDenOverflow
	}
	return FromBigRat(d.Rat())
}

// MarshalText implements encoding.TextMarshaler using the n/d form.
func (x Fraction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// Parse accepts.
func (x *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
