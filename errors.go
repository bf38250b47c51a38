// SPDX-License-Identifier: MIT
// Package valuta: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. Nothing in
// the public surface panics on user-triggered conditions; the single panic in
// the package (MustNew) exists for literals and says so in its name.

package valuta

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "valuta: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (e.g. the two mismatching tags), wrap
// with fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.

var (
	// ErrInvalidTag indicates a tag that is blank after trimming, or one that
	// contains whitespace. Construction rejects it; checked operations return
	// it when fed the zero Amount.
	ErrInvalidTag = errors.New("valuta: invalid tag")

	// ErrTagMismatch indicates two operands with different tags. It is always
	// wrapped with both tags quoted, e.g. `operands "EUR" and "USD": ...`,
	// and is never silently coerced away.
	ErrTagMismatch = errors.New("valuta: tag mismatch")

	// ErrMalformed indicates text that does not parse as "<decimal> <tag>".
	ErrMalformed = errors.New("valuta: malformed amount text")
)
