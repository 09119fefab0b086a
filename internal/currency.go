package internal

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the closed set of currencies the tracker understands. TWD is
// the primary currency; every exchange rate is defined relative to it.
type Currency string

const (
	TWD Currency = "TWD"
	USD Currency = "USD"
)

type currencyInfo struct {
	symbol string
	rate   float64 // units of this currency per 1 TWD
	tag    language.Tag
}

var currencyTable = map[Currency]currencyInfo{
	TWD: {symbol: "NT$", rate: 1.0, tag: language.TraditionalChinese},
	USD: {symbol: "$", rate: 0.033, tag: language.AmericanEnglish},
}

// Currencies returns the supported currency codes in display order.
func Currencies() []Currency {
	return []Currency{TWD, USD}
}

// ParseCurrency maps a code like "twd" or "USD" to a Currency.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencyTable[c]; !ok {
		return "", ErrUnknownCurrency
	}
	return c, nil
}

// Symbol returns the display symbol (NT$ for TWD, $ for USD).
func (c Currency) Symbol() string {
	return currencyTable[c].symbol
}

// ExchangeRate returns the fixed rate relative to TWD (TWD itself is 1.0).
func (c Currency) ExchangeRate() float64 {
	return currencyTable[c].rate
}

// Convert maps amount in the from currency to the to currency using the
// fixed rate table. Rates are defined relative to TWD, so conversion to a
// non-primary currency multiplies by its rate and conversion back divides.
// No rounding is applied; two-decimal display is a formatting concern.
func Convert(amount float64, from, to Currency) float64 {
	if from == to {
		return amount
	}
	inPrimary := amount / currencyTable[from].rate
	return inPrimary * currencyTable[to].rate
}

// Format renders an amount with the currency symbol, locale-aware with two
// fraction digits.
func (c Currency) Format(amount float64) string {
	info := currencyTable[c]
	p := message.NewPrinter(info.tag)
	formatted := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return info.symbol + formatted
}
