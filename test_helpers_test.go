// SPDX-License-Identifier: MIT
// Package valuta_test: shared fixtures for the valuta test suite.

package valuta_test

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/valuta"
)

// Common tags used across the suite.
const (
	TagEUR = "EUR"
	TagUSD = "USD"
)

// amt builds a constructed Amount from a decimal literal and a tag,
// panicking on bad fixtures so tests fail loudly at the source.
func amt(magnitude, tag string) valuta.Amount {
	return valuta.MustNew(decimal.RequireFromString(magnitude), tag)
}
