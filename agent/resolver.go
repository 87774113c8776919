package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/diary"
)

// Unknown is the model's answer for inputs that are not a listed company.
const Unknown = "UNKNOWN"

// Resolver maps free text to canonical tickers.
type Resolver struct {
	model Model // nil disables the resolution
}

// NewResolver returns a Resolver asking m. A nil m makes the resolver a pass-through.
func NewResolver(m Model) *Resolver { return &Resolver{model: m} }

// IsTicker reports whether s already looks like a ticker: once trimmed and
// without '.' and '-', it is made of ASCII letters and digits only.
func IsTicker(s string) bool {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(".", "", "-", "").Replace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

// Resolve returns the ticker and company name for input.
//
// Ticker-shaped inputs are returned upper cased without asking the model. Any
// model failure falls back to the input itself: resolution never blocks the caller.
func (r *Resolver) Resolve(ctx context.Context, input string) diary.ResolvedTicker {
	trimmed := strings.TrimSpace(input)
	passThrough := diary.ResolvedTicker{
		Ticker:      strings.ToUpper(trimmed),
		CompanyName: trimmed,
		Input:       input,
	}

	if IsTicker(trimmed) {
		passThrough.CompanyName = passThrough.Ticker
		return passThrough
	}
	if r.model == nil || trimmed == "" {
		return passThrough
	}

	answer, err := r.model.Generate(ctx, fmt.Sprintf(resolvePrompt, trimmed))
	if err != nil {
		log.Printf("cannot resolve %q: %v", trimmed, err)
		return passThrough
	}
	ticker, company, ok := parseResolution(answer, trimmed)
	if !ok {
		log.Printf("cannot resolve %q: unexpected answer %q", trimmed, answer)
		return passThrough
	}
	return diary.ResolvedTicker{Ticker: ticker, CompanyName: company, Input: input}
}

// parseResolution parses a "TICKER|CompanyName" answer. company defaults to input.
func parseResolution(answer, input string) (ticker, company string, ok bool) {
	answer = strings.TrimSpace(answer)
	ticker, company, found := strings.Cut(answer, "|")
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	company = strings.TrimSpace(company)
	if !found || company == "" {
		company = input
	}
	if ticker == "" || ticker == Unknown {
		return "", "", false
	}
	return ticker, company, true
}
