// Package split divides integer totals into parts proportional to
// fractional weights, without the drift of floating-point shares.
package split

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kbolino/ufrac"
)

var (
	ErrNoWeights  = errors.New("no weights")
	ErrZeroWeight = errors.New("weights sum to zero")
)

// Shares returns the exact share of total owed to each weight, that is
// total*w/sum(weights). The shares always add up to total.
func Shares(total uint64, weights []ufrac.Fraction) ([]ufrac.Fraction, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	var sum ufrac.Fraction
	for i, w := range weights {
		var err error
		sum, err = sum.TryAdd(w)
		if err != nil {
			return nil, fmt.Errorf("summing weight %d: %w", i, err)
		}
	}
	if sum.IsZero() {
		return nil, ErrZeroWeight
	}
	shares := make([]ufrac.Fraction, len(weights))
	for i, w := range weights {
		// w/sum is w*den(sum)/num(sum), which only needs scalar ops
		s, err := w.TryMulScalar(sum.Den())
		if err == nil {
			s, err = s.TryDivScalar(sum.Num())
		}
		if err == nil {
			s, err = s.TryMulScalar(total)
		}
		if err != nil {
			return nil, fmt.Errorf("share of weight %d: %w", i, err)
		}
		shares[i] = s
	}
	return shares, nil
}

// Split divides total into integer parts proportional to weights using the
// largest remainder method: every part gets the floor of its share, and the
// units lost to flooring go to the parts with the largest fractional
// remainders. Ties go to the part listed first. The parts add up to total.
func Split(total uint64, weights []ufrac.Fraction) ([]uint64, error) {
	shares, err := Shares(total, weights)
	if err != nil {
		return nil, err
	}
	parts := make([]uint64, len(shares))
	rems := make([]ufrac.Fraction, len(shares))
	order := make([]int, len(shares))
	var assigned uint64
	for i, s := range shares {
		parts[i] = s.Floor()
		rems[i] = s.Frac()
		order[i] = i
		assigned += parts[i]
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return rems[b].Cmp(rems[a])
	})
	// the remainders are each below 1 and add up to an integer, so fewer
	// units are left than there are parts
	for _, i := range order[:total-assigned] {
		parts[i]++
	}
	return parts, nil
}
