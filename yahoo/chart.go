package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/etnz/diary"
	"github.com/shopspring/decimal"
)

// chart is the response of the v8 chart API.
//
//	{"chart": {"result": [{
//	    "meta": {"currency": "USD", "symbol": "TSLA", "regularMarketPrice": 248.5, "gmtoffset": -14400, ...},
//	    "timestamp": [1718803800, ...],
//	    "indicators": {"quote": [{"open": [...], "high": [...], "low": [...], "close": [...], "volume": [...]}]}
//	}], "error": null}}
type chart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Timezone  string `json:"timezone"`
				GMTOffset int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History implements diary.Provider with daily bars.
func (c *Client) History(ctx context.Context, ticker string, from, to time.Time) ([]diary.Bar, error) {
	var content chart
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(from.Unix(), 10),
			"period2":  strconv.FormatInt(to.Unix(), 10),
			"interval": "1d",
		}).
		Get(chartPath(ticker))
	if err != nil {
		return nil, err
	}
	// unknown tickers are reported with a 404 and an error description.
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("cannot http GET chart of %s: %v", ticker, resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), &content); err != nil {
		return nil, fmt.Errorf("cannot decode chart of %s: %w", ticker, err)
	}
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart of %s: %s", ticker, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, nil
	}

	result := content.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	loc := time.FixedZone(result.Meta.Timezone, result.Meta.GMTOffset)
	quote := result.Indicators.Quote[0]

	bars := make([]diary.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o, h, l, cl := at(quote.Open, i), at(quote.High, i), at(quote.Low, i), at(quote.Close, i)
		if o == nil || h == nil || l == nil || cl == nil {
			continue // holidays and the current session before the open.
		}
		bar := diary.Bar{
			Date:  time.Unix(ts, 0).In(loc),
			Open:  decimal.NewFromFloat(*o),
			High:  decimal.NewFromFloat(*h),
			Low:   decimal.NewFromFloat(*l),
			Close: decimal.NewFromFloat(*cl),
		}
		if v := at(quote.Volume, i); v != nil {
			bar.Volume = *v
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}

// Price implements diary.Provider with the chart's regular market price.
func (c *Client) Price(ctx context.Context, ticker string) (decimal.Decimal, error) {
	doc, err := c.getJSON(ctx, chartPath(ticker), url.Values{"range": {"1d"}, "interval": {"1d"}})
	if err != nil {
		return decimal.Zero, err
	}
	if doc == nil {
		return decimal.Zero, fmt.Errorf("no quote for %s", ticker)
	}
	v, err := get(doc, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return decimal.Zero, fmt.Errorf("no market price for %s: %w", ticker, err)
	}
	price, ok := v.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid market price for %s: %v", ticker, v)
	}
	return decimal.NewFromFloat(price), nil
}
