// Package eodhd implements a diary.Provider on top of the EOD Historical Data API.
//
// See https://eodhd.com/financial-apis/
package eodhd

import (
	"net/http"
	"strings"

	"github.com/etnz/diary"
)

// DefaultBaseURL is the EODHD API root.
const DefaultBaseURL = "https://eodhd.com/api"

// DemoKey is EODHD's public key, limited to a few tickers (AAPL.US, TSLA.US, MCD.US...).
const DemoKey = "demo"

// Client queries the EODHD API. It implements diary.Provider.
type Client struct {
	apiKey string
	base   string
	http   *http.Client
}

var _ diary.Provider = (*Client)(nil)

// New returns a client authenticated by apiKey. An empty key is the DemoKey.
func New(apiKey string) *Client {
	if apiKey == "" {
		apiKey = DemoKey
	}
	return &Client{apiKey: apiKey, base: DefaultBaseURL, http: newLoggingClient()}
}

// WithBaseURL returns a copy of c querying base instead of DefaultBaseURL.
func (c *Client) WithBaseURL(base string) *Client {
	cp := *c
	cp.base = strings.TrimSuffix(base, "/")
	return &cp
}

// exchanges maps Yahoo style ticker suffixes to EODHD's exchange codes.
// See https://eodhd.com/financial-apis/covered-tickers-eodhd
var exchanges = map[string]string{
	"KS": "KO", // KOSPI
	"KQ": "KQ", // KOSDAQ
	"T":  "TSE",
	"L":  "LSE",
	"PA": "PA",
	"DE": "XETRA",
	"HK": "HK",
}

// Ticker converts a canonical ticker into EODHD's "CODE.EXCHANGE" notation.
//
// Bare tickers are US equities, e.g. "AAPL" is "AAPL.US", and Korean
// tickers are moved to EODHD's exchanges, e.g. "005930.KS" is "005930.KO".
// Unknown suffixes are assumed to already be EODHD exchange codes.
func Ticker(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	i := strings.LastIndexByte(ticker, '.')
	if i < 0 {
		return ticker + ".US"
	}
	if ex, ok := exchanges[ticker[i+1:]]; ok {
		return ticker[:i] + "." + ex
	}
	return ticker
}
