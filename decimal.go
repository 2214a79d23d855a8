package ufrac

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal returns x as a decimal rounded to prec digits after the decimal
// point. The last digit is rounded half up. x must be valid.
func (x Fraction) Decimal(prec int32) decimal.Decimal {
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(x.n), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(x.Den()), 0)
	return num.DivRound(den, prec)
}

// DecimalString returns a string representation of x as a decimal number
// with exactly prec digits after the decimal point, rounded half up.
// If prec <= 0, the decimal point is omitted from the string.
// x must be valid.
//
// The following relation should hold for all valid values of x:
//
//	x.DecimalString(prec) == x.BigRat().FloatString(prec)
func (x Fraction) DecimalString(prec int32) string {
	if prec < 0 {
		prec = 0
	}
	return x.Decimal(prec).StringFixed(prec)
}
