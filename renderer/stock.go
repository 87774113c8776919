package renderer

import (
	"github.com/dustin/go-humanize"
	"github.com/etnz/diary"
	"github.com/etnz/diary/agent"
	"github.com/shopspring/decimal"
)

// MaxNews is the number of news displayed.
const MaxNews = 5

// Stock is the view of a session rendered by StockMarkdown.
type Stock struct {
	Name          string
	Ticker        string
	Input         string
	CompanyName   string
	Converted     bool
	Price         string
	PreviousClose string
	Change        string
	ChangePercent string
	Volume        string
	History       []Bar
	News          []diary.NewsItem
	Insight       string
	Mock          bool // the insight was generated offline
	Error         bool // the insight is an error message
}

// Bar is a formatted diary.Bar.
type Bar struct {
	Date                   string
	Open, High, Low, Close string
	Volume                 string
}

// NewStock builds the view of s. s must hold fetched data.
func NewStock(s *diary.Session) *Stock {
	d := s.Data
	cur := d.Currency()
	change, percent := d.Change()

	v := &Stock{
		Name:          d.ShortName(s.Resolved.CompanyName),
		Ticker:        d.Ticker,
		Input:         s.Resolved.Input,
		CompanyName:   s.Resolved.CompanyName,
		Converted:     s.Resolved.Converted(),
		Price:         diary.FormatMoney(d.Price, cur),
		PreviousClose: diary.FormatMoney(d.PreviousClose(), cur),
		Change:        signed(change, 2),
		ChangePercent: signed(percent, 2),
		Volume:        humanize.Comma(d.Volume()),
		Insight:       s.Insight,
		Mock:          agent.IsMock(s.Insight),
		Error:         agent.IsError(s.Insight),
	}
	if v.Name == "" {
		v.Name = d.Ticker
	}
	for _, b := range d.History {
		v.History = append(v.History, Bar{
			Date:   b.Date.Format("2006-01-02"),
			Open:   diary.FormatMoney(b.Open, cur),
			High:   diary.FormatMoney(b.High, cur),
			Low:    diary.FormatMoney(b.Low, cur),
			Close:  diary.FormatMoney(b.Close, cur),
			Volume: humanize.Comma(b.Volume),
		})
	}
	v.News = d.News
	if len(v.News) > MaxNews {
		v.News = v.News[:MaxNews]
	}
	return v
}

func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if d.IsPositive() {
		s = "+" + s
	}
	return s
}

// StockMarkdown renders the session's last analysis.
func StockMarkdown(s *diary.Session) string {
	if !s.Ready() {
		return "No data.\n"
	}
	partials := map[string]string{
		"stock_history": "stock_history.md",
		"stock_insight": "stock_insight.md",
		"stock_news":    "stock_news.md",
	}
	return renderTemplate("stock", "stock.md", partials, NewStock(s))
}
