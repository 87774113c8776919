package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/etnz/diary"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the EODHD API.

// addr returns the address of an endpoint, with the api token and the json format.
func (c *Client) addr(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_token", c.apiKey)
	query.Set("fmt", "json")
	return c.base + path + "?" + query.Encode()
}

// History implements diary.Provider with end of day prices.
func (c *Client) History(ctx context.Context, ticker string, from, to time.Time) ([]diary.Bar, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2024-02-01&to=2024-02-13
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	//
	// bounds are included in the response.
	addr := c.addr("/eod/"+url.PathEscape(Ticker(ticker)), url.Values{
		"from": {from.Format(time.DateOnly)},
		"to":   {to.Format(time.DateOnly)},
	})
	type Info struct {
		Date   string          `json:"date"`
		Open   decimal.Decimal `json:"open"`
		High   decimal.Decimal `json:"high"`
		Low    decimal.Decimal `json:"low"`
		Close  decimal.Decimal `json:"close"`
		Volume int64           `json:"volume"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := jwget(ctx, c.http, addr, &content); errors.Is(err, errNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	bars := make([]diary.Bar, 0, len(content))
	for _, info := range content {
		day, err := time.Parse(time.DateOnly, info.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date in eod prices of %s: %w", ticker, err)
		}
		bars = append(bars, diary.Bar{
			Date:   day,
			Open:   info.Open,
			High:   info.High,
			Low:    info.Low,
			Close:  info.Close,
			Volume: info.Volume,
		})
	}
	return bars, nil
}

// realTime is the payload of the real-time endpoint. Values are "NA" when the
// market data is not available, hence the untyped fields.
//
//	{"code":"AAPL.US","timestamp":1718827200,"gmtoffset":0,"open":213.93,"high":214.24,
//	 "low":208.85,"close":209.68,"volume":70565799,"previousClose":214.29,"change":-4.61,"change_p":-2.1513}
type realTime struct {
	Code          string `json:"code"`
	Close         any    `json:"close"`
	PreviousClose any    `json:"previousClose"`
	Volume        any    `json:"volume"`
}

func (c *Client) realTime(ctx context.Context, ticker string) (*realTime, error) {
	addr := c.addr("/real-time/"+url.PathEscape(Ticker(ticker)), nil)
	var content realTime
	if err := jwget(ctx, c.http, addr, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Price implements diary.Provider with the real-time (15 minutes delayed) price.
func (c *Client) Price(ctx context.Context, ticker string) (decimal.Decimal, error) {
	rt, err := c.realTime(ctx, ticker)
	if err != nil {
		return decimal.Zero, err
	}
	price, ok := rt.Close.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("no real-time price for %s: %v", ticker, rt.Close)
	}
	return decimal.NewFromFloat(price), nil
}

// Info implements diary.Provider with the previous close and volume of the real-time endpoint.
func (c *Client) Info(ctx context.Context, ticker string) (map[string]any, error) {
	rt, err := c.realTime(ctx, ticker)
	if err != nil {
		return nil, err
	}
	info := make(map[string]any)
	if v, ok := rt.PreviousClose.(float64); ok {
		info[diary.InfoPreviousClose] = v
	}
	if v, ok := rt.Volume.(float64); ok {
		info[diary.InfoVolume] = v
	}
	return info, nil
}

// News implements diary.Provider with the financial news API.
func (c *Client) News(ctx context.Context, ticker string) ([]any, error) {
	// https://eodhd.com/api/news?s=AAPL.US&limit=10&api_token=demo&fmt=json
	// [
	//  {
	//   "date": "2024-06-19T14:30:00+00:00",
	//   "title": "Apple ...",
	//   "content": "...",
	//   "link": "https://...",
	//   "symbols": ["AAPL.US"],
	//   "tags": [],
	//   "sentiment": {"polarity": 0.9, "neg": 0.02, "neu": 0.86, "pos": 0.12}
	//  },
	addr := c.addr("/news", url.Values{
		"s":     {Ticker(ticker)},
		"limit": {"10"},
	})
	var content []any
	if err := jwget(ctx, c.http, addr, &content); err != nil {
		return nil, err
	}
	return content, nil
}
