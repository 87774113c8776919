package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/diary"
)

const (
	// MockMarker prefixes the insights generated without a language model.
	MockMarker = "[MOCK INSIGHT]"
	// NoNews replaces the news digest when there is no news.
	NoNews = "No recent news available"
	// EmptyResponse is returned when the model answered nothing.
	EmptyResponse = "The AI returned an empty response. Please try again."
	// DefaultLanguage is the language insights are written in.
	DefaultLanguage = "Korean"

	digestSize = 5
)

// Analyst writes short investment insights.
type Analyst struct {
	model    Model // nil generates offline mock insights
	Language string
}

// NewAnalyst returns an Analyst asking m. A nil m generates offline insights.
func NewAnalyst(m Model) *Analyst {
	return &Analyst{model: m, Language: DefaultLanguage}
}

// Digest joins the titles of the first news of data.
func Digest(data *diary.StockData) string {
	titles := make([]string, 0, digestSize)
	for _, n := range data.News {
		if len(titles) == digestSize {
			break
		}
		if n.Title != "" {
			titles = append(titles, n.Title)
		}
	}
	if len(titles) == 0 {
		return NoNews
	}
	return strings.Join(titles, "; ")
}

// Generate returns an insight about data. It never fails, errors are
// returned as a message to be displayed.
func (a *Analyst) Generate(ctx context.Context, data *diary.StockData) string {
	digest := Digest(data)
	price := data.FormatPrice()

	if a.model == nil {
		return fmt.Sprintf("%s The stock %s is currently trading at %s. Recent news indicates: %s. Consider monitoring volatility.",
			MockMarker, data.Ticker, price, digest)
	}

	lang := a.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	text, err := a.model.Generate(ctx, fmt.Sprintf(insightPrompt, data.Ticker, price, digest, lang))
	if err != nil {
		log.Printf("insight generation for %s failed: %v", data.Ticker, err)
		return ErrorMessage(err)
	}
	if text = strings.TrimSpace(text); text == "" {
		return EmptyResponse
	}
	return text
}

// IsMock reports whether insight was generated offline.
func IsMock(insight string) bool { return strings.HasPrefix(insight, MockMarker) }

// IsError reports whether insight is an error message rather than an analysis.
func IsError(insight string) bool {
	return strings.HasPrefix(insight, "Error") || insight == EmptyResponse
}
