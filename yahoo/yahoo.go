// Package yahoo implements a diary.Provider on top of the Yahoo Finance public API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/diary"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Yahoo Finance API root.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// newsCount is the number of news requested per ticker.
const newsCount = 10

// Client queries Yahoo Finance. It implements diary.Provider.
type Client struct {
	http *resty.Client
}

var _ diary.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.http.SetBaseURL(u) }
}

// WithTransport sets the HTTP transport used by the client.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.SetTransport(rt) }
}

// New creates a Yahoo Finance client.
func New(opts ...Option) *Client {
	client := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(30*time.Second).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			req := resp.Request.RawRequest
			log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status())
			return nil
		})

	c := &Client{http: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a GET on path and returns the decoded JSON document.
// A 404 returns a nil document and no error.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (any, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("cannot http GET %v: %v", path, resp.Status())
	}
	var doc any
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("cannot decode %v: %w", path, err)
	}
	return doc, nil
}

// get returns the value at path in doc, keeping the first one if jsonpath returns a list.
func get(doc any, path string) (any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if l, ok := v.([]any); ok && len(l) == 1 {
		v = l[0]
	}
	return v, nil
}

func chartPath(ticker string) string { return "/v8/finance/chart/" + url.PathEscape(ticker) }
