package diary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// upperResolver resolves known names, and passes through the others.
type upperResolver map[string]ResolvedTicker

func (r upperResolver) Resolve(_ context.Context, input string) ResolvedTicker {
	if res, ok := r[input]; ok {
		res.Input = input
		return res
	}
	return ResolvedTicker{Ticker: upperTrim(input), CompanyName: input, Input: input}
}

type echoAnalyst struct{}

func (echoAnalyst) Generate(_ context.Context, d *StockData) string {
	return fmt.Sprintf("%s at %s", d.Ticker, d.FormatPrice())
}

type recorder struct {
	entries []Entry
	err     error
}

func (r *recorder) Publish(_ context.Context, e Entry) (*Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.entries = append(r.entries, e)
	return &Record{ID: "page", URL: "https://notion.so/page", Created: time.Now()}, nil
}

func testJournal(pub RecordPublisher) *Journal {
	p := &fakeProvider{
		bars:  []Bar{bar(13, "250.5")},
		price: decimal.RequireFromString("251.25"),
	}
	return &Journal{
		Resolver:  upperResolver{"테슬라": {Ticker: "TSLA", CompanyName: "Tesla"}},
		Fetcher:   newTestFetcher(p),
		Analyst:   echoAnalyst{},
		Publisher: pub,
	}
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	j := testJournal(rec)

	var s Session
	if err := j.Analyze(ctx, "테슬라", &s); err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if s.Resolved.Ticker != "TSLA" || s.Resolved.CompanyName != "Tesla" || !s.Resolved.Converted() {
		t.Errorf("Analyze() resolved %+v", s.Resolved)
	}
	if s.Insight != "TSLA at $251.25" {
		t.Errorf("Analyze() insight = %q", s.Insight)
	}

	s.Note = "  buy the dip  "
	r, err := j.Save(ctx, &s)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if r.URL != "https://notion.so/page" {
		t.Errorf("Save() = %+v", r)
	}
	e := rec.entries[0]
	if e.Ticker != "TSLA" || !e.Price.Equal(decimal.RequireFromString("251.25")) || e.Status != DefaultStatus || !e.Date.IsZero() {
		t.Errorf("Save() published %+v", e)
	}
	if want := "TSLA at $251.25\n\n[User Note]: buy the dip"; e.Summary != want {
		t.Errorf("Save() summary = %q, want %q", e.Summary, want)
	}

	// a new analysis starts over.
	if err := j.Analyze(ctx, "nosuch", &s); err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if s.Note != "" || s.Resolved.Ticker != "NOSUCH" {
		t.Errorf("Analyze() did not reset the session: %+v", s)
	}
}

func TestJournalUnknownTicker(t *testing.T) {
	j := testJournal(&recorder{})
	j.Fetcher = newTestFetcher(&fakeProvider{})

	var s Session
	s.Note = "old note"
	err := j.Analyze(context.Background(), "nosuch", &s)
	if !errors.Is(err, ErrTickerNotFound) {
		t.Errorf("Analyze() error = %v, want ErrTickerNotFound", err)
	}
	if s.Ready() || s.Note != "" || s.Insight != "" {
		t.Errorf("Analyze() left a stale session: %+v", s)
	}
	if _, err := j.Save(context.Background(), &s); !errors.Is(err, ErrNothingToSave) {
		t.Errorf("Save() error = %v, want ErrNothingToSave", err)
	}
}

func TestJournalSaveErrors(t *testing.T) {
	ctx := context.Background()

	j := testJournal(nil)
	var s Session
	if err := j.Analyze(ctx, "AAPL", &s); err != nil {
		t.Fatal(err)
	}
	if _, err := j.Save(ctx, &s); !errors.Is(err, ErrNoPublisher) {
		t.Errorf("Save() without publisher error = %v, want ErrNoPublisher", err)
	}

	down := errors.New("service unavailable")
	j.Publisher = &recorder{err: down}
	if r, err := j.Save(ctx, &s); r != nil || !errors.Is(err, down) {
		t.Errorf("Save() = %v, %v, want nil, %v", r, err, down)
	}
}

func TestSessionSummary(t *testing.T) {
	s := Session{Insight: "insight"}
	if got := s.Summary(); got != "insight" {
		t.Errorf("Summary() = %q, want the insight only", got)
	}
	s.Note = " \n"
	if got := s.Summary(); got != "insight" {
		t.Errorf("Summary() with a blank note = %q, want the insight only", got)
	}
	s.Note = "note"
	if got := s.Summary(); !strings.HasSuffix(got, "\n\n[User Note]: note") {
		t.Errorf("Summary() = %q, want the note appended", got)
	}
}
