// Package notion publishes diary entries as pages of a Notion database.
//
// The database must have the following properties:
//
//	Ticker      title
//	Price       number
//	Date        date
//	AI_Summary  rich text
//	Status      select
package notion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/etnz/diary"
	"github.com/jomei/notionapi"
)

// MaxSummaryLength is the number of characters Notion accepts in a rich text block.
const MaxSummaryLength = 2000

// ErrMissingConfig is returned when the Notion token or database ID is not set.
var ErrMissingConfig = errors.New("notion token and database ID must be provided")

// Database property names.
const (
	PropTicker  = "Ticker"
	PropPrice   = "Price"
	PropDate    = "Date"
	PropSummary = "AI_Summary"
	PropStatus  = "Status"
)

// pageCreator is the part of notionapi.PageService used to publish.
type pageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// Publisher creates diary records in a Notion database. It implements diary.RecordPublisher.
type Publisher struct {
	pages    pageCreator
	database notionapi.DatabaseID
	now      func() time.Time
}

var _ diary.RecordPublisher = (*Publisher)(nil)

// New returns a Publisher on the database identified by databaseID.
//
// Both token and databaseID are required, ErrMissingConfig is returned otherwise.
func New(token, databaseID string, opts ...notionapi.ClientOption) (*Publisher, error) {
	token, databaseID = strings.TrimSpace(token), strings.TrimSpace(databaseID)
	if token == "" || databaseID == "" {
		return nil, ErrMissingConfig
	}
	client := notionapi.NewClient(notionapi.Token(token), opts...)
	return &Publisher{
		pages:    client.Page,
		database: notionapi.DatabaseID(databaseID),
		now:      time.Now,
	}, nil
}

// Truncate cuts s to at most max characters.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// request builds the page creation request for e.
func (p *Publisher) request(e diary.Entry) *notionapi.PageCreateRequest {
	on := e.Date
	if on.IsZero() {
		on = p.now()
	}
	date := notionapi.Date(on)
	status := e.Status
	if status == "" {
		status = diary.DefaultStatus
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: p.database,
		},
		Properties: notionapi.Properties{
			PropTicker: notionapi.TitleProperty{
				Title: []notionapi.RichText{{Text: &notionapi.Text{Content: e.Ticker}}},
			},
			PropPrice: notionapi.NumberProperty{
				Number: e.Price.InexactFloat64(),
			},
			PropDate: notionapi.DateProperty{
				Date: &notionapi.DateObject{Start: &date},
			},
			PropSummary: notionapi.RichTextProperty{
				RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: Truncate(e.Summary, MaxSummaryLength)}}},
			},
			PropStatus: notionapi.SelectProperty{
				Select: notionapi.Option{Name: status},
			},
		},
	}
}

// Publish creates one page for e.
//
// Failures are logged and returned, the record is nil then.
func (p *Publisher) Publish(ctx context.Context, e diary.Entry) (*diary.Record, error) {
	page, err := p.pages.Create(ctx, p.request(e))
	if err != nil {
		log.Printf("Error adding record to Notion: %v", err)
		return nil, fmt.Errorf("cannot create notion page for %s: %w", e.Ticker, err)
	}
	return &diary.Record{
		ID:      string(page.ID),
		URL:     page.URL,
		Created: page.CreatedTime,
	}, nil
}
