// Package valuta is a tiny algebra for tagged decimal values — amounts of
// money (or any magnitude carrying a unit label) that refuse to be mixed
// across tags.
//
// 🚀 What is valuta?
//
//	A small, strict library around one immutable value type, Amount:
//		• Checked construction: a blank tag never produces a value
//		• Checked combination: "EUR + USD" is an error, not a guess
//		• Integer scaling: factor may be zero or negative, never lossy
//		• Three-way comparison: Less / Equal / Greater, tag-checked
//		• Canonical text form: "12.50 EUR", parseable back into an Amount
//
// ✨ Why choose valuta?
//
//   - Arbitrary precision – magnitudes ride on shopspring/decimal, no floats
//   - Immutable values – every operation derives a fresh Amount
//   - Sentinel errors – match failures with errors.Is, nothing panics
//   - Pure Go – no cgo, no hidden state, safe to share across goroutines
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/shopspring/decimal"
//	  "github.com/katalvlaran/valuta"
//	)
//
//	price, _ := valuta.New(decimal.RequireFromString("10.50"), "EUR")
//	tip, _   := valuta.New(decimal.RequireFromString("2"), "EUR")
//
//	total, err := price.Combine(tip)  // 12.50 EUR
//	if err != nil { ... }             // ErrTagMismatch if tags differed
//	fmt.Println(total)                // "12.50 EUR"
//	fmt.Println(total.Scale(2))       // "25.00 EUR"
//
// Errors:
//
//	ErrInvalidTag  - tag is blank or contains whitespace.
//	ErrTagMismatch - two operands carry different tags.
//	ErrMalformed   - text being parsed is not "<decimal> <tag>".
//
// See example_test.go for runnable snippets and examples/ for a full
// pricing scenario.
package valuta
