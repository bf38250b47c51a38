// SPDX-License-Identifier: MIT
// Package valuta: the Amount value type and its constructors.
//
// Amount is a closed, immutable pair of an arbitrary-precision magnitude and
// a non-empty tag (a currency code, a unit label). Derived instances come
// only from the operations in ops.go / compare.go; nothing mutates an Amount
// after construction, so values are safe to share freely.

package valuta

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Ordering is the result of a three-way comparison between two Amounts.
type Ordering int

const (
	// Less means the first magnitude is numerically smaller.
	Less Ordering = iota - 1

	// Equal means the magnitudes are numerically equal
	// (representation does not matter: 12.5 equals 12.50).
	Equal

	// Greater means the first magnitude is numerically larger.
	Greater
)

// String renders the Ordering as "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

// Amount is an immutable tagged decimal value.
//
// The zero Amount is not a valid value: it has no tag, and every checked
// operation fed one reports ErrInvalidTag. Always build Amounts through New,
// MustNew or Parse.
type Amount struct {
	magnitude decimal.Decimal
	tag       string
}

// New builds an Amount from a magnitude and a tag.
//
// The tag is trimmed of surrounding whitespace before validation and stored
// trimmed, so " EUR " and "EUR" name the same tag. A tag that is blank after
// trimming, or that still contains whitespace, yields ErrInvalidTag — inner
// whitespace would make the canonical text form ("<magnitude> <tag>")
// ambiguous.
//
// Complexity: O(len(tag)).
func New(magnitude decimal.Decimal, tag string) (Amount, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return Amount{}, fmt.Errorf("tag %q is blank: %w", tag, ErrInvalidTag)
	}
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return Amount{}, fmt.Errorf("tag %q contains whitespace: %w", tag, ErrInvalidTag)
	}

	return Amount{magnitude: magnitude, tag: trimmed}, nil
}

// MustNew is New that panics on an invalid tag. Intended for literals in
// tests and examples where the tag is a compile-time constant.
func MustNew(magnitude decimal.Decimal, tag string) Amount {
	a, err := New(magnitude, tag)
	if err != nil {
		panic(err)
	}

	return a
}

// Magnitude returns the decimal payload of a.
func (a Amount) Magnitude() decimal.Decimal { return a.magnitude }

// Tag returns the identifying label of a (empty only for the zero Amount).
func (a Amount) Tag() string { return a.tag }

// guard validates that a and b are constructed Amounts carrying the same tag.
// It backs every binary operation in the package.
func (a Amount) guard(b Amount) error {
	if a.tag == "" || b.tag == "" {
		return ErrInvalidTag
	}
	if a.tag != b.tag {
		return fmt.Errorf("operands %q and %q: %w", a.tag, b.tag, ErrTagMismatch)
	}

	return nil
}
