package ufrac_test

import (
	"fmt"
	"testing"

	"github.com/kbolino/ufrac"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraction_DecimalString(t *testing.T) {
	cases := []struct {
		Frac   ufrac.Fraction
		Prec   int32
		String string
	}{
		{New(0, 1), -1, "0"},
		{New(0, 1), 0, "0"},
		{New(0, 1), 1, "0.0"},
		{New(0, 1), 3, "0.000"},
		{New(1, 1), -1, "1"},
		{New(1, 1), 0, "1"},
		{New(1, 1), 2, "1.00"},
		{New(1, 2), 0, "1"},
		{New(1, 2), 1, "0.5"},
		{New(1, 2), 3, "0.500"},
		{New(3, 4), 0, "1"},
		{New(3, 4), 1, "0.8"},
		{New(3, 4), 2, "0.75"},
		{New(1, 3), 0, "0"},
		{New(1, 3), 1, "0.3"},
		{New(1, 3), 3, "0.333"},
		{New(2, 3), 0, "1"},
		{New(2, 3), 1, "0.7"},
		{New(2, 3), 3, "0.667"},
		{New(4, 3), 2, "1.33"},
		{New(76, 7), 0, "11"},
		{New(76, 7), 1, "10.9"},
		{New(76, 7), 2, "10.86"},
		{New(76, 7), 3, "10.857"},
		{New(76, 7), 4, "10.8571"},
		{New(76, 7), 5, "10.85714"},
		{New(1<<63-1, 2), 1, "4611686018427387903.5"},
		{Int(Max), 0, "18446744073709551615"},

		// the following reference values were obtained from big.Rat.FloatString
		{New(1<<63-2, 1<<63-1), 18, "1.000000000000000000"},
		{New(1<<63-2, 1<<63-1), 19, "0.9999999999999999999"},
		{New(1<<63-2, 1<<63-1), 20, "0.99999999999999999989"},
		{New(1<<63-2, 1<<63-1), 21, "0.999999999999999999892"},
		{New(1<<63-2, 1<<63-1), 22, "0.9999999999999999998916"},
		{New(1<<63-2, 1<<63-1), 25, "0.9999999999999999998915798"},
	}
	for _, c := range cases {
		x := c.Frac
		t.Run(fmt.Sprintf("(%s):%d", x, c.Prec), func(t *testing.T) {
			assert.Equal(t, c.String, x.DecimalString(c.Prec))
			if c.Prec >= 0 {
				assert.Equal(t, x.BigRat().FloatString(int(c.Prec)), x.DecimalString(c.Prec))
			}
		})
	}
}

func TestFraction_Decimal(t *testing.T) {
	want, err := decimal.NewFromString("0.33")
	require.NoError(t, err)
	assert.True(t, want.Equal(New(1, 3).Decimal(2)))

	want, err = decimal.NewFromString("2.5")
	require.NoError(t, err)
	assert.True(t, want.Equal(New(5, 2).Decimal(4)))
}
