package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	t.Run("GroupsDigitsForEnglishLocale", func(t *testing.T) {
		got := Currency(decimal.NewFromInt(1234567), "en")
		assert.Equal(t, "1,234,567", got)
	})

	t.Run("TruncatesFractionalUnits", func(t *testing.T) {
		got := Currency(decimal.NewFromFloat(1234567.89), "en")
		assert.Equal(t, "1,234,567", got)
	})

	t.Run("UnknownLocaleFallsBack", func(t *testing.T) {
		amount := decimal.NewFromInt(1234567)
		assert.Equal(t, Currency(amount, "und"), Currency(amount, "no-such-locale!"))
	})

	t.Run("SmallAmountsUngrouped", func(t *testing.T) {
		assert.Equal(t, "500", Currency(decimal.NewFromInt(500), "en"))
	})
}
