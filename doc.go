// Package diary provides the building blocks of a stock investment diary.
// It turns what a user types into a canonical ticker, gathers a week of
// market data and news for it, gets a short investment insight from a
// language model and records the result in an external database.
//
// The core functionalities include:
//   - Ticker Resolution: mapping free text (a company name in any language or
//     an exchange symbol) to a canonical ticker. See the agent package.
//   - Market Data: fetching a StockData bundle (price, daily bars, news and
//     metadata) from a Provider. Only the price history is mandatory, every
//     other part degrades to an empty value.
//   - News Normalization: flattening the many shapes of news items returned
//     by providers into NewsItem values.
//   - Journaling: a Journal drives a Session through resolve, fetch, insight
//     and save actions.
//
// This package serves as the foundational logic for the `diary` command-line
// tool.
package diary
