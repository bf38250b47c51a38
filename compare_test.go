// SPDX-License-Identifier: MIT
// Package valuta_test verifies the comparison surface: Compare, EqualTo,
// Min, Max and the sign predicates.

package valuta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valuta"
)

// TestCompare_Orderings asserts the three orderings and that comparison is
// numeric, not representational.
func TestCompare_Orderings(t *testing.T) {
	ord, err := amt("2", TagEUR).Compare(amt("10.50", TagEUR))
	require.NoError(t, err)
	assert.Equal(t, valuta.Less, ord, "2 < 10.50")

	ord, err = amt("12.5", TagEUR).Compare(amt("12.50", TagEUR))
	require.NoError(t, err)
	assert.Equal(t, valuta.Equal, ord, "12.5 and 12.50 are the same value")

	ord, err = amt("-1", TagEUR).Compare(amt("-2", TagEUR))
	require.NoError(t, err)
	assert.Equal(t, valuta.Greater, ord, "-1 > -2")
}

// TestCompare_TagMismatch asserts Compare shares the binary tag contract and
// names both tags in the error.
func TestCompare_TagMismatch(t *testing.T) {
	_, err := amt("1", TagEUR).Compare(amt("1", TagUSD))
	require.ErrorIs(t, err, valuta.ErrTagMismatch)
	assert.Contains(t, err.Error(), `"EUR"`)
	assert.Contains(t, err.Error(), `"USD"`)

	var zero valuta.Amount
	_, err = zero.Compare(amt("1", TagEUR))
	assert.ErrorIs(t, err, valuta.ErrInvalidTag)
}

// TestEqualTo asserts the boolean wrapper over Compare.
func TestEqualTo(t *testing.T) {
	eq, err := amt("7.0", TagUSD).EqualTo(amt("7", TagUSD))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = amt("7", TagUSD).EqualTo(amt("8", TagUSD))
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = amt("7", TagUSD).EqualTo(amt("7", TagEUR))
	assert.ErrorIs(t, err, valuta.ErrTagMismatch)
}

// TestMinMax asserts selection keeps the chosen operand's representation and
// rejects mismatched tags.
func TestMinMax(t *testing.T) {
	low, high := amt("2.50", TagEUR), amt("10", TagEUR)

	got, err := valuta.Min(low, high)
	require.NoError(t, err)
	assert.Equal(t, "2.50 EUR", got.String())

	got, err = valuta.Max(low, high)
	require.NoError(t, err)
	assert.Equal(t, "10 EUR", got.String())

	// Ties keep the first operand.
	got, err = valuta.Min(amt("5.0", TagEUR), amt("5", TagEUR))
	require.NoError(t, err)
	assert.Equal(t, "5.0 EUR", got.String())

	_, err = valuta.Min(low, amt("1", TagUSD))
	assert.ErrorIs(t, err, valuta.ErrTagMismatch)
	_, err = valuta.Max(low, amt("1", TagUSD))
	assert.ErrorIs(t, err, valuta.ErrTagMismatch)
}

// TestSignPredicates asserts IsZero/IsNegative/IsPositive over the three
// sign classes.
func TestSignPredicates(t *testing.T) {
	zero, neg, pos := amt("0.00", TagEUR), amt("-3", TagEUR), amt("3", TagEUR)

	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsNegative())
	assert.False(t, zero.IsPositive())

	assert.True(t, neg.IsNegative())
	assert.False(t, neg.IsZero())

	assert.True(t, pos.IsPositive())
	assert.False(t, pos.IsNegative())
}
