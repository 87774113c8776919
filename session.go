package diary

import (
	"strings"
	"time"
)

// Session holds the state of one user's journaling session: the last
// resolution, the data fetched for it and the insight generated from it.
//
// A new resolution overwrites everything, see Reset.
type Session struct {
	Resolved ResolvedTicker
	Data     *StockData
	Insight  string
	Note     string    // free text appended to the insight when saving
	On       time.Time // day of the record, zero means the day it is saved
}

// Reset starts over the session for a new resolution.
func (s *Session) Reset(r ResolvedTicker) {
	*s = Session{Resolved: r}
}

// Ready reports whether the session holds fetched data that can be saved.
func (s *Session) Ready() bool { return s.Data != nil }

// Summary returns the text to be saved: the insight followed by the user note, if any.
func (s *Session) Summary() string {
	summary := s.Insight
	if note := strings.TrimSpace(s.Note); note != "" {
		summary += "\n\n[User Note]: " + note
	}
	return summary
}

// Entry returns the record creation request for this session.
func (s *Session) Entry(status string, on time.Time) Entry {
	return Entry{
		Ticker:  s.Data.Ticker,
		Price:   s.Data.Price,
		Summary: s.Summary(),
		Status:  status,
		Date:    on,
	}
}
