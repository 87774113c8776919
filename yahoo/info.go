package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/etnz/diary"
)

// infoPaths lists, for each info key, the chart meta fields to read in order.
var infoPaths = []struct {
	key   string
	paths []string
}{
	{diary.InfoShortName, []string{"$.chart.result[0].meta.shortName", "$.chart.result[0].meta.longName"}},
	{diary.InfoPreviousClose, []string{"$.chart.result[0].meta.previousClose", "$.chart.result[0].meta.chartPreviousClose"}},
	{diary.InfoVolume, []string{"$.chart.result[0].meta.regularMarketVolume"}},
	{diary.InfoCurrency, []string{"$.chart.result[0].meta.currency"}},
	{diary.InfoExchange, []string{"$.chart.result[0].meta.fullExchangeName", "$.chart.result[0].meta.exchangeName"}},
}

// Info implements diary.Provider with the metadata of the chart API.
func (c *Client) Info(ctx context.Context, ticker string) (map[string]any, error) {
	doc, err := c.getJSON(ctx, chartPath(ticker), url.Values{"range": {"1d"}, "interval": {"1d"}})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no metadata for %s", ticker)
	}

	info := make(map[string]any)
	for _, field := range infoPaths {
		for _, path := range field.paths {
			if v, err := get(doc, path); err == nil && v != nil {
				info[field.key] = v
				break
			}
		}
	}
	return info, nil
}

// News implements diary.Provider with the news of the search API.
func (c *Client) News(ctx context.Context, ticker string) ([]any, error) {
	query := url.Values{
		"q":           {ticker},
		"quotesCount": {"0"},
		"newsCount":   {fmt.Sprint(newsCount)},
	}
	doc, err := c.getJSON(ctx, "/v1/finance/search", query)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no news for %s", ticker)
	}
	v, err := jsonpathNews(doc)
	if err != nil {
		return nil, fmt.Errorf("no news for %s: %w", ticker, err)
	}
	return v, nil
}

func jsonpathNews(doc any) ([]any, error) {
	v, err := get(doc, "$.news")
	if err != nil {
		return nil, err
	}
	switch news := v.(type) {
	case []any:
		return news, nil
	case map[string]any:
		// a single article, unwrapped by get.
		return []any{news}, nil
	}
	return nil, fmt.Errorf("unexpected news type %T", v)
}
