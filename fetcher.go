package diary

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// HistoryDays is the trailing window of price history fetched for a ticker, in calendar days.
const HistoryDays = 7

// Fetcher builds StockData bundles out of a Provider.
type Fetcher struct {
	provider Provider
	now      func() time.Time
}

// NewFetcher returns a Fetcher on top of p.
func NewFetcher(p Provider) *Fetcher {
	return &Fetcher{provider: p, now: time.Now}
}

// Fetch fetches the price, history, news and metadata of ticker.
//
// The price history is the only mandatory part: if it is empty Fetch returns an
// error wrapping ErrTickerNotFound. News and metadata failures are logged and
// degrade to empty values.
func (f *Fetcher) Fetch(ctx context.Context, ticker string) (*StockData, error) {
	ticker = upperTrim(ticker)
	to := f.now()
	from := to.AddDate(0, 0, -HistoryDays)

	history, err := f.provider.History(ctx, ticker, from, to)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch history of %q: %w", ticker, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no data found for %q: %w", ticker, ErrTickerNotFound)
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })

	data := &StockData{
		Ticker:  ticker,
		History: history,
		News:    []NewsItem{},
		Info:    map[string]any{},
	}

	data.Price, err = f.provider.Price(ctx, ticker)
	if err != nil || data.Price.IsZero() {
		if err != nil {
			log.Printf("live price of %s unavailable, using the last close: %v", ticker, err)
		}
		// history is not empty, the last close is always there.
		data.Price, _ = data.LastClose()
	}

	raw, err := f.provider.News(ctx, ticker)
	if err != nil {
		log.Printf("news of %s unavailable: %v", ticker, err)
	} else {
		data.News = NormalizeNews(raw)
	}

	info, err := f.provider.Info(ctx, ticker)
	if err != nil {
		log.Printf("info of %s unavailable: %v", ticker, err)
	} else if info != nil {
		data.Info = info
	}

	return data, nil
}
