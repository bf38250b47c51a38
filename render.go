// Package valuta: the canonical text form of Amount.
//
// The one external surface of the package: "<magnitude> <tag>", e.g.
// "12.50 EUR". The magnitude uses the decimal library's canonical
// fixed-point string (no exponent notation; trailing zeros follow the
// value's own scale). String and Parse are exact inverses for every
// constructed Amount, and the Text(Un)Marshaler pair rides on them, which
// also gives encoding/json interop without a bespoke codec.

package valuta

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders a as "<magnitude> <tag>", e.g. "12.50 EUR". It is a pure
// function of the value: repeated calls yield identical text. The zero
// Amount renders as its bare magnitude ("0") so Stringer never misleads
// with a phantom tag.
func (a Amount) String() string {
	if a.tag == "" {
		return a.magnitude.String()
	}

	return a.magnitude.String() + " " + a.tag
}

// Parse is the inverse of String: it reads "<magnitude> <tag>" back into an
// Amount. Surrounding whitespace is ignored; the split is on the last space,
// so the tag never contains one.
//
// Errors:
//   - ErrMalformed when s has no tag separator or the magnitude does not
//     parse as a decimal (wrapped with the parser's detail).
//   - ErrInvalidTag when the tag part fails construction rules.
func Parse(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	sep := strings.LastIndexByte(trimmed, ' ')
	if sep < 0 {
		return Amount{}, fmt.Errorf("%q: missing tag separator: %w", s, ErrMalformed)
	}

	magnitude, err := decimal.NewFromString(trimmed[:sep])
	if err != nil {
		return Amount{}, fmt.Errorf("%q: %v: %w", s, err, ErrMalformed)
	}

	return New(magnitude, trimmed[sep+1:])
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
// The zero Amount does not serialize: it has no tag to carry.
func (a Amount) MarshalText() ([]byte, error) {
	if a.tag == "" {
		return nil, ErrInvalidTag
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
