package diary

import (
	"context"
	"errors"
)

var (
	// ErrNothingToSave is returned when saving a session that has no fetched data.
	ErrNothingToSave = errors.New("nothing to save, analyze a ticker first")
	// ErrNoPublisher is returned when saving without a configured publisher.
	ErrNoPublisher = errors.New("publisher is not configured")
)

// DefaultStatus is the status tag of saved records.
const DefaultStatus = "Analyzed"

// TickerResolver maps user input to a canonical ticker. It never fails: a
// resolver that cannot resolve returns the input as is.
type TickerResolver interface {
	Resolve(ctx context.Context, input string) ResolvedTicker
}

// InsightGenerator writes a short natural language summary of a bundle. It
// never fails: errors are reported as user displayable text.
type InsightGenerator interface {
	Generate(ctx context.Context, data *StockData) string
}

// RecordPublisher persists diary entries.
type RecordPublisher interface {
	Publish(ctx context.Context, e Entry) (*Record, error)
}

// Journal wires user input through resolution, fetch, insight generation and
// publication.
type Journal struct {
	Resolver  TickerResolver
	Fetcher   *Fetcher
	Analyst   InsightGenerator
	Publisher RecordPublisher // nil when publication is not configured
	Status    string          // DefaultStatus if empty
}

// Analyze resolves input, fetches its data and generates an insight, all
// stored in s. s is reset first, even if the fetch fails.
func (j *Journal) Analyze(ctx context.Context, input string, s *Session) error {
	s.Reset(j.Resolver.Resolve(ctx, input))

	data, err := j.Fetcher.Fetch(ctx, s.Resolved.Ticker)
	if err != nil {
		return err
	}
	s.Data = data
	s.Insight = j.Analyst.Generate(ctx, data)
	return nil
}

// Save publishes the session's last analysis.
func (j *Journal) Save(ctx context.Context, s *Session) (*Record, error) {
	if !s.Ready() {
		return nil, ErrNothingToSave
	}
	if j.Publisher == nil {
		return nil, ErrNoPublisher
	}
	status := j.Status
	if status == "" {
		status = DefaultStatus
	}
	return j.Publisher.Publish(ctx, s.Entry(status, s.On))
}
