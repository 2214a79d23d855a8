// Package ufrac provides exact non-negative rational numbers.
// See the Fraction type and the Int function for details.
package ufrac

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Common errors returned by functions in this package.
var (
	ErrDenInvalid  = errors.New("denominator is zero")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDivByZero   = errors.New("division by zero")
	ErrNegative    = errors.New("result is negative")
	ErrFmtInvalid  = errors.New("invalid number format")
)

// Fraction is a non-negative rational number with 64-bit numerator and
// denominator. Intermediate results are computed with 128 bits, so no
// precision is lost as long as the reduced result fits in 64 bits.
//
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Every arithmetic operation reduces its result to lowest terms, so values
// obtained from Int, New, Try, the parsing functions, or arithmetic on such
// values are always reduced. Raw is the only way to hold an unreduced pair.
//
// Fraction has proper value semantics and its values can be freely copied.
// The == operator compares the stored pair, not the value:
// Raw(2, 4) != Raw(1, 2), but Raw(2, 4).Cmp(Raw(1, 2)) == 0.
// Use Cmp to compare values.
//
// The unchecked operators (Add, Sub, MulScalar, DivScalar) trust the caller:
// a result that is negative or does not fit in 64 bits after reduction
// wraps around, and DivScalar(0) yields a value for which IsValid is false.
// The Try forms report these cases as errors instead.
type Fraction struct {
	n uint64
	d uint64
}

// Int returns the fraction n/1.
func Int(n uint64) Fraction {
	return Fraction{n, 0}
}

// From is like Int but accepts any unsigned integer type.
func From[T constraints.Unsigned](n T) Fraction {
	return Int(uint64(n))
}

// Try creates a new fraction with the given numerator and denominator,
// reduced to lowest terms.
// Try returns an error if the denominator is zero.
func Try(num, den uint64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDenInvalid
	}
	return Fraction{num, den - 1}.Reduce(), nil
}

// New is like Try but panics if the denominator is zero.
func New(num, den uint64) Fraction {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// Raw creates a fraction holding exactly num/den, without reducing it.
// Raw panics if the denominator is zero.
func Raw(num, den uint64) Fraction {
	if den == 0 {
		panic(ErrDenInvalid)
	}
	return Fraction{num, den - 1}
}

// FromBigRat converts a big.Rat to a Fraction, if it is possible to do so.
func FromBigRat(r *big.Rat) (Fraction, error) {
	if r.Sign() < 0 {
		return Fraction{}, ErrNegative
	}
	num, den := r.Num(), r.Denom()
	if !num.IsUint64() {
		return Fraction{}, ErrNumOverflow
	} else if !den.IsUint64() {
		return Fraction{}, ErrDenOverflow
	}
	// big.Rat is always normalized, so there is nothing left to reduce
	return Fraction{num.Uint64(), den.Uint64() - 1}, nil
}

// Num returns the numerator of x.
func (x Fraction) Num() uint64 {
	return x.n
}

// Den returns the denominator of x.
func (x Fraction) Den() uint64 {
	return x.d + 1
}

// IsValid returns true if the denominator of x is not zero.
// Invalid fractions only arise from DivScalar(0).
func (x Fraction) IsValid() bool {
	return x.d != math.MaxUint64
}

// IsZero returns true if x is equal to 0.
func (x Fraction) IsZero() bool {
	return x.n == 0
}

// IsReduced returns true if x is valid and in lowest terms.
func (x Fraction) IsReduced() bool {
	return x.IsValid() && GCD(x.n, x.Den()) == 1
}

// Reduce returns x in lowest terms. Invalid fractions are returned as is.
func (x Fraction) Reduce() Fraction {
	if !x.IsValid() {
		return x
	}
	if x.n == 0 {
		return Fraction{}
	}
	g := GCD(x.n, x.Den())
	if g == 1 {
		return x
	}
	return Fraction{x.n / g, x.Den()/g - 1}
}

// Floor returns the integer part of x. x must be valid.
func (x Fraction) Floor() uint64 {
	return x.n / x.Den()
}

// Frac returns the fractional part of x, that is x - Floor(x).
// x must be valid.
func (x Fraction) Frac() Fraction {
	return Fraction{x.n % x.Den(), x.d}.Reduce()
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y, comparing values
// rather than representations.
func (x Fraction) Cmp(y Fraction) int {
	if x.d == y.d {
		return cmp.Compare(x.n, y.n)
	}
	// products of two 64-bit values are exact at 128 bits
	l := uint128.From64(x.n).Mul64(y.Den())
	r := uint128.From64(y.n).Mul64(x.Den())
	return l.Cmp(r)
}

// Less reports whether x < y.
func (x Fraction) Less(y Fraction) bool {
	return x.Cmp(y) < 0
}

// Equal reports whether x and y hold the same numerator and denominator.
// It is the same as x == y; use Cmp to compare values.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

// Compare is x.Cmp(y) in a form usable with slices.SortFunc.
func Compare(x, y Fraction) int {
	return x.Cmp(y)
}

// Add adds x and y and returns the result.
// The result must fit in 64 bits after reduction, otherwise it wraps.
func (x Fraction) Add(y Fraction) Fraction {
	if x.d == 0 && y.d == 0 {
		return Fraction{x.n + y.n, 0}
	}
	num, den, ok := x.wide(y, false)
	if !ok {
		if rx, ry := x.Reduce(), y.Reduce(); rx != x || ry != y {
			return rx.Add(ry)
		}
	}
	return narrow(num, den)
}

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryAdd(y Fraction) (Fraction, error) {
	if x.d == 0 && y.d == 0 {
		n, carry := bits.Add64(x.n, y.n, 0)
		if carry != 0 {
			return Fraction{}, ErrNumOverflow
		}
		return Fraction{n, 0}, nil
	}
	num, den, ok := x.wide(y, false)
	if !ok {
		if rx, ry := x.Reduce(), y.Reduce(); rx != x || ry != y {
			return rx.TryAdd(ry)
		}
		// for reduced operands a carry means the reduced denominator
		// needs more than 64 bits
		return Fraction{}, ErrDenOverflow
	}
	return tryNarrow(num, den)
}

// AddAssign sets x to x.Add(y).
func (x *Fraction) AddAssign(y Fraction) {
	*x = x.Add(y)
}

// Sub subtracts y from x and returns the result.
// y must not be greater than x, otherwise the result wraps.
func (x Fraction) Sub(y Fraction) Fraction {
	if x.d == 0 && y.d == 0 {
		return Fraction{x.n - y.n, 0}
	}
	num, den, _ := x.wide(y, true)
	return narrow(num, den)
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and ErrNegative if y is greater than x.
func (x Fraction) TrySub(y Fraction) (Fraction, error) {
	if x.d == 0 && y.d == 0 {
		n, borrow := bits.Sub64(x.n, y.n, 0)
		if borrow != 0 {
			return Fraction{}, ErrNegative
		}
		return Fraction{n, 0}, nil
	}
	num, den, ok := x.wide(y, true)
	if !ok {
		return Fraction{}, ErrNegative
	}
	return tryNarrow(num, den)
}

// SubAssign sets x to x.Sub(y).
func (x *Fraction) SubAssign(y Fraction) {
	*x = x.Sub(y)
}

// MulScalar multiplies x by k and returns the result.
// The result must fit in 64 bits after reduction, otherwise it wraps.
func (x Fraction) MulScalar(k uint64) Fraction {
	return narrow(uint128.From64(x.n).Mul64(k), uint128.From64(x.Den()))
}

// TryMulScalar multiplies x by k and returns the result.
// TryMulScalar returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryMulScalar(k uint64) (Fraction, error) {
	return tryNarrow(uint128.From64(x.n).Mul64(k), uint128.From64(x.Den()))
}

// MulAssign sets x to x.MulScalar(k).
func (x *Fraction) MulAssign(k uint64) {
	*x = x.MulScalar(k)
}

// DivScalar divides x by k and returns the result.
// k must not be zero; dividing by zero yields an invalid fraction.
func (x Fraction) DivScalar(k uint64) Fraction {
	return narrow(uint128.From64(x.n), uint128.From64(x.Den()).Mul64(k))
}

// TryDivScalar divides x by k and returns the result.
// TryDivScalar returns 0 and a non-nil error if k is zero or the result
// would overflow.
func (x Fraction) TryDivScalar(k uint64) (Fraction, error) {
	if k == 0 {
		return Fraction{}, ErrDivByZero
	}
	return tryNarrow(uint128.From64(x.n), uint128.From64(x.Den()).Mul64(k))
}

// DivAssign sets x to x.DivScalar(k).
func (x *Fraction) DivAssign(k uint64) {
	*x = x.DivScalar(k)
}

// String returns a string representation of x, as n/d.
func (x Fraction) String() string {
	return fmt.Sprintf("%d/%d", x.n, x.Den())
}

// BigRat converts x to a new big.Rat. x must be valid.
func (x Fraction) BigRat() *big.Rat {
	num := new(big.Int).SetUint64(x.n)
	den := new(big.Int).SetUint64(x.Den())
	return new(big.Rat).SetFrac(num, den)
}

// wide returns the numerator and denominator of x+y, or of x-y if sub is
// set, at 128 bits. ok is false if the numerator carried out of 128 bits
// or, for subtraction, borrowed below zero. When x and y are reduced and
// the reduced sum has a 64-bit denominator, the numerator cannot carry.
func (x Fraction) wide(y Fraction, sub bool) (num, den uint128.Uint128, ok bool) {
	var xn, yn uint128.Uint128
	if x.d == y.d {
		xn, yn = uint128.From64(x.n), uint128.From64(y.n)
		den = uint128.From64(x.Den())
	} else {
		// divide out the shared factor of the denominators first
		// (Knuth, TAOCP Vol 2, 4.5.1)
		xd, yd := x.Den(), y.Den()
		g := GCD(xd, yd)
		xn = uint128.From64(x.n).Mul64(yd / g)
		yn = uint128.From64(y.n).Mul64(xd / g)
		den = uint128.From64(xd).Mul64(yd / g)
	}
	if sub {
		return xn.SubWrap(yn), den, xn.Cmp(yn) >= 0
	}
	num = xn.AddWrap(yn)
	return num, den, num.Cmp(xn) >= 0
}

// narrow reduces num/den by their GCD and truncates the result to 64 bits.
// The division is skipped when the GCD is 1, which leaves the same pair.
func narrow(num, den uint128.Uint128) Fraction {
	if g := GCD128(num, den); !g.IsZero() && !g.Equals64(1) {
		num, den = num.Div(g), den.Div(g)
	}
	return Fraction{num.Lo, den.Lo - 1}
}

// tryNarrow is like narrow but reports a zero denominator or a reduced
// result that does not fit in 64 bits.
func tryNarrow(num, den uint128.Uint128) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, ErrDenInvalid
	}
	if g := GCD128(num, den); !g.Equals64(1) {
		num, den = num.Div(g), den.Div(g)
	}
	if num.Hi != 0 {
		return Fraction{}, ErrNumOverflow
	}
	if den.Hi != 0 {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{num.Lo, den.Lo - 1}, nil
}
