// Package valuta: tag-checked comparison surface for Amount.

package valuta

// Compare orders a against b numerically and returns Less, Equal or Greater.
// Comparison is by value, not by representation: 12.5 and 12.50 are Equal.
//
// Errors:
//   - ErrTagMismatch when the tags differ (wrapped with both tags).
//   - ErrInvalidTag when either operand is the zero Amount.
func (a Amount) Compare(b Amount) (Ordering, error) {
	if err := a.guard(b); err != nil {
		return Equal, err
	}

	return Ordering(a.magnitude.Cmp(b.magnitude)), nil
}

// EqualTo reports whether a and b are numerically equal under the same tag.
// Same error contract as Compare.
func (a Amount) EqualTo(b Amount) (bool, error) {
	ord, err := a.Compare(b)
	if err != nil {
		return false, err
	}

	return ord == Equal, nil
}

// Min returns the smaller of a and b. Same error contract as Compare.
func Min(a, b Amount) (Amount, error) {
	ord, err := a.Compare(b)
	if err != nil {
		return Amount{}, err
	}
	if ord == Greater {
		return b, nil
	}

	return a, nil
}

// Max returns the larger of a and b. Same error contract as Compare.
func Max(a, b Amount) (Amount, error) {
	ord, err := a.Compare(b)
	if err != nil {
		return Amount{}, err
	}
	if ord == Less {
		return b, nil
	}

	return a, nil
}

// IsZero reports whether the magnitude of a is exactly zero.
func (a Amount) IsZero() bool { return a.magnitude.IsZero() }

// IsNegative reports whether the magnitude of a is below zero.
func (a Amount) IsNegative() bool { return a.magnitude.IsNegative() }

// IsPositive reports whether the magnitude of a is above zero.
func (a Amount) IsPositive() bool { return a.magnitude.IsPositive() }
