package diary

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// exchange suffixes of tickers not traded in USD.
var suffixCurrencies = map[string]string{
	".KS": "KRW", // KOSPI
	".KQ": "KRW", // KOSDAQ
	".KO": "KRW", // KOSPI, EODHD notation
	".T":  "JPY",
	".HK": "HKD",
	".L":  "GBP",
	".PA": "EUR",
	".DE": "EUR",
}

// TickerCurrency infers the trading currency from a canonical ticker's exchange suffix.
// Bare tickers are US equities.
func TickerCurrency(ticker string) string {
	ticker = upperTrim(ticker)
	if i := strings.LastIndexByte(ticker, '.'); i >= 0 {
		if cur, ok := suffixCurrencies[ticker[i:]]; ok {
			return cur
		}
	}
	return "USD"
}

// FormatMoney formats value in currency using the currency's usual symbol and digits.
func FormatMoney(value decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// FormatPrice formats the bundle's current price in its trading currency.
func (d *StockData) FormatPrice() string {
	return FormatMoney(d.Price, d.Currency())
}

func upperTrim(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
