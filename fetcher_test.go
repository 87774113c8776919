package diary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var now = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

// fakeProvider serves fixed data, or errors when the matching field is set.
type fakeProvider struct {
	bars     []Bar
	price    decimal.Decimal
	news     []any
	info     map[string]any
	histErr  error
	priceErr error
	newsErr  error
	infoErr  error

	from, to time.Time
}

func (p *fakeProvider) History(_ context.Context, _ string, from, to time.Time) ([]Bar, error) {
	p.from, p.to = from, to
	return p.bars, p.histErr
}

func (p *fakeProvider) Price(context.Context, string) (decimal.Decimal, error) {
	return p.price, p.priceErr
}

func (p *fakeProvider) News(context.Context, string) ([]any, error) { return p.news, p.newsErr }

func (p *fakeProvider) Info(context.Context, string) (map[string]any, error) {
	return p.info, p.infoErr
}

func bar(day int, close string) Bar {
	return Bar{Date: time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), Close: decimal.RequireFromString(close)}
}

func newTestFetcher(p Provider) *Fetcher {
	f := NewFetcher(p)
	f.now = func() time.Time { return now }
	return f
}

func TestFetch(t *testing.T) {
	p := &fakeProvider{
		bars:  []Bar{bar(13, "102"), bar(11, "100"), bar(12, "101")},
		price: decimal.RequireFromString("103.5"),
		news:  []any{map[string]any{"title": "a"}, "junk"},
		info:  map[string]any{InfoShortName: "Apple Inc.", InfoPreviousClose: 102.0},
	}

	data, err := newTestFetcher(p).Fetch(context.Background(), " aapl ")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if data.Ticker != "AAPL" {
		t.Errorf("Fetch().Ticker = %q, want AAPL", data.Ticker)
	}
	if !p.to.Equal(now) || !p.from.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("History() window = [%v, %v], want the last 7 days", p.from, p.to)
	}
	for i, want := range []int{11, 12, 13} {
		if got := data.History[i].Date.Day(); got != want {
			t.Errorf("Fetch().History[%d] is on day %d, want %d", i, got, want)
		}
	}
	if !data.Price.Equal(decimal.RequireFromString("103.5")) {
		t.Errorf("Fetch().Price = %v, want 103.5", data.Price)
	}
	if len(data.News) != 1 {
		t.Errorf("Fetch().News = %v, want 1 item", data.News)
	}
	if got := data.ShortName("?"); got != "Apple Inc." {
		t.Errorf("ShortName() = %q, want Apple Inc.", got)
	}
	change, percent := data.Change()
	if change.String() != "1.5" || percent.StringFixed(2) != "1.47" {
		t.Errorf("Change() = %v, %v, want 1.5, 1.47", change, percent.StringFixed(2))
	}
}

func TestFetchNotFound(t *testing.T) {
	data, err := newTestFetcher(&fakeProvider{}).Fetch(context.Background(), "NOSUCH")
	if data != nil {
		t.Errorf("Fetch() = %+v, want nil", data)
	}
	if !errors.Is(err, ErrTickerNotFound) {
		t.Errorf("Fetch() error = %v, want ErrTickerNotFound", err)
	}
}

func TestFetchHistoryError(t *testing.T) {
	down := errors.New("connection refused")
	_, err := newTestFetcher(&fakeProvider{histErr: down}).Fetch(context.Background(), "AAPL")
	if !errors.Is(err, down) {
		t.Errorf("Fetch() error = %v, want %v", err, down)
	}
}

func TestFetchDegraded(t *testing.T) {
	p := &fakeProvider{
		bars:     []Bar{bar(12, "101"), bar(13, "102")},
		priceErr: errors.New("no quote"),
		newsErr:  errors.New("no news"),
		infoErr:  errors.New("no info"),
	}

	data, err := newTestFetcher(p).Fetch(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if !data.Price.Equal(decimal.NewFromInt(102)) {
		t.Errorf("Fetch().Price = %v, want the last close 102", data.Price)
	}
	if data.News == nil || len(data.News) != 0 {
		t.Errorf("Fetch().News = %#v, want an empty list", data.News)
	}
	if data.Info == nil || len(data.Info) != 0 {
		t.Errorf("Fetch().Info = %#v, want an empty map", data.Info)
	}
	// without info, the previous close is the price.
	if change, _ := data.Change(); !change.IsZero() {
		t.Errorf("Change() = %v, want 0", change)
	}
}

func TestFetchZeroPrice(t *testing.T) {
	p := &fakeProvider{bars: []Bar{bar(13, "71200")}}
	data, err := newTestFetcher(p).Fetch(context.Background(), "005930.KS")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if !data.Price.Equal(decimal.NewFromInt(71200)) {
		t.Errorf("Fetch().Price = %v, want the last close 71200", data.Price)
	}
	if got := data.Currency(); got != "KRW" {
		t.Errorf("Currency() = %q, want KRW", got)
	}
}
