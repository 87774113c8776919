package diary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Provider is a market data source.
//
// Each method is one round trip to the remote service.
type Provider interface {
	// History returns the daily bars of ticker between from and to, in any order.
	History(ctx context.Context, ticker string, from, to time.Time) ([]Bar, error)
	// Price returns the latest real time price of ticker.
	Price(ctx context.Context, ticker string) (decimal.Decimal, error)
	// News returns the raw news records about ticker, as decoded from JSON.
	News(ctx context.Context, ticker string) ([]any, error)
	// Info returns metadata about ticker, see the Info* keys.
	Info(ctx context.Context, ticker string) (map[string]any, error)
}
