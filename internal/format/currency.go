// Package format holds presentation-layer formatting. The core computes
// exact decimal values only; anything locale-dependent happens here, with the
// locale passed explicitly.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency renders amount with locale-appropriate digit grouping, truncated
// to whole units the way contract documents and SMS reminders present money.
// An unknown locale falls back to the Und (language-neutral) conventions.
func Currency(amount decimal.Decimal, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(amount.IntPart()))
}
