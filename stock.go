package diary

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTickerNotFound is returned when a provider has no trading data for a ticker.
var ErrTickerNotFound = errors.New("ticker not found")

// Bar is one trading day open/high/low/close record.
type Bar struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// NewsItem is a flat, normalized news headline.
type NewsItem struct {
	Title     string
	Link      string
	Publisher string
}

// Well known keys of StockData.Info. All of them are optional.
const (
	InfoShortName     = "shortName"
	InfoPreviousClose = "previousClose"
	InfoVolume        = "volume"
	InfoCurrency      = "currency"
	InfoExchange      = "exchange"
)

// StockData is the bundle returned by a fetch for a single ticker.
//
// History is sorted by ascending date.
type StockData struct {
	Ticker  string
	Price   decimal.Decimal
	History []Bar
	News    []NewsItem
	Info    map[string]any
}

// ShortName returns the provider's display name, or def if there is none.
func (d *StockData) ShortName(def string) string {
	if s, ok := d.Info[InfoShortName].(string); ok && s != "" {
		return s
	}
	return def
}

// PreviousClose returns the previous session close price. It defaults to the
// current price when the provider did not report one.
func (d *StockData) PreviousClose() decimal.Decimal {
	if v, ok := toDecimal(d.Info[InfoPreviousClose]); ok {
		return v
	}
	return d.Price
}

// Volume returns the reported volume, 0 if unknown.
func (d *StockData) Volume() int64 {
	if v, ok := toDecimal(d.Info[InfoVolume]); ok {
		return v.IntPart()
	}
	return 0
}

// Change returns the absolute and relative (in percent) change since the previous close.
func (d *StockData) Change() (value, percent decimal.Decimal) {
	prev := d.PreviousClose()
	value = d.Price.Sub(prev)
	if prev.IsZero() {
		return value, decimal.Zero
	}
	return value, value.Div(prev).Mul(decimal.NewFromInt(100))
}

// Currency returns the ISO code of the currency the ticker is traded in.
func (d *StockData) Currency() string {
	if c, ok := d.Info[InfoCurrency].(string); ok && c != "" {
		return c
	}
	return TickerCurrency(d.Ticker)
}

// LastClose returns the close of the most recent bar, if any.
func (d *StockData) LastClose() (decimal.Decimal, bool) {
	if len(d.History) == 0 {
		return decimal.Zero, false
	}
	return d.History[len(d.History)-1].Close, true
}

// ResolvedTicker is the outcome of resolving a user input.
type ResolvedTicker struct {
	Ticker      string
	CompanyName string
	Input       string // what the user typed
}

// Converted reports whether the resolution changed the user's input.
func (r ResolvedTicker) Converted() bool {
	return r.Ticker != "" && r.Ticker != upperTrim(r.Input)
}

// Entry is a request to create one diary record.
type Entry struct {
	Ticker  string
	Price   decimal.Decimal
	Summary string
	Status  string
	Date    time.Time // zero means now
}

// Record is a handle on a record created by a publisher.
type Record struct {
	ID      string
	URL     string
	Created time.Time
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case float64:
		return decimal.NewFromFloat(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}
	return decimal.Zero, false
}
