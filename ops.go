// Package valuta: derivation operations on Amount.
//
// Every operation here is pure: it validates, then returns a fresh Amount,
// leaving both operands untouched. Binary operations share one contract —
// operand tags must match, enforced by guard and reported as ErrTagMismatch
// with both tags attached. There is no implicit conversion between tags and
// no partial result: each operation either succeeds whole or returns the
// zero Amount alongside its error.

package valuta

import "github.com/shopspring/decimal"

// Combine returns the sum of a and b under their shared tag.
//
// Errors:
//   - ErrTagMismatch when the tags differ (wrapped with both tags).
//   - ErrInvalidTag when either operand is the zero Amount.
func (a Amount) Combine(b Amount) (Amount, error) {
	if err := a.guard(b); err != nil {
		return Amount{}, err
	}

	return Amount{magnitude: a.magnitude.Add(b.magnitude), tag: a.tag}, nil
}

// Sub returns a minus b under their shared tag. Same error contract as
// Combine.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.guard(b); err != nil {
		return Amount{}, err
	}

	return Amount{magnitude: a.magnitude.Sub(b.magnitude), tag: a.tag}, nil
}

// Sum folds Combine over first and rest, left to right. The first operand
// fixes the tag; the first mismatching element aborts the fold with
// ErrTagMismatch and no partial total is returned.
func Sum(first Amount, rest ...Amount) (Amount, error) {
	total := first
	for _, next := range rest {
		var err error
		if total, err = total.Combine(next); err != nil {
			return Amount{}, err
		}
	}
	if total.tag == "" {
		return Amount{}, ErrInvalidTag
	}

	return total, nil
}

// Scale returns a with its magnitude multiplied by factor, same tag.
// The factor may be zero or negative; integer scaling of an arbitrary-
// precision decimal is always exact, so there is no error path. Scaling the
// zero Amount returns the zero Amount.
func (a Amount) Scale(factor int64) Amount {
	if a.tag == "" {
		return Amount{}
	}

	return Amount{magnitude: a.magnitude.Mul(decimal.NewFromInt(factor)), tag: a.tag}
}

// Neg returns a with the sign of its magnitude flipped, same tag.
// Negating the zero Amount returns the zero Amount.
func (a Amount) Neg() Amount {
	if a.tag == "" {
		return Amount{}
	}

	return Amount{magnitude: a.magnitude.Neg(), tag: a.tag}
}

// Abs returns a with a non-negative magnitude, same tag.
// Abs of the zero Amount returns the zero Amount.
func (a Amount) Abs() Amount {
	if a.tag == "" {
		return Amount{}
	}

	return Amount{magnitude: a.magnitude.Abs(), tag: a.tag}
}
