// Package cmd implements the diary command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/diary"
	"github.com/etnz/diary/agent"
	"github.com/etnz/diary/config"
	"github.com/etnz/diary/eodhd"
	"github.com/etnz/diary/notion"
	"github.com/etnz/diary/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&resolveCmd{}, "diary")
	c.Register(&fetchCmd{}, "diary")
	c.Register(&analyzeCmd{}, "diary")
	c.Register(&journalCmd{}, "diary")
	c.Register(&watchCmd{}, "diary")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML configuration file")

// loadConfig loads the application configuration, reporting failures on stderr.
func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, false
	}
	return cfg, true
}

// newProvider returns the market data provider selected by cfg.
func newProvider(cfg *config.Config) diary.Provider {
	if cfg.Market.Provider == config.ProviderEODHD {
		return eodhd.New(cfg.Market.EODHDAPIKey)
	}
	return yahoo.New()
}

// newJournal wires the diary components according to cfg.
//
// The language model and the publisher are optional: without them the
// journal works offline and cannot save.
func newJournal(ctx context.Context, cfg *config.Config) (*diary.Journal, error) {
	var model agent.Model
	if cfg.HasModel() {
		g, err := agent.NewGemini(ctx, cfg.Google.APIKey, cfg.Google.Model)
		if err != nil {
			return nil, fmt.Errorf("cannot create Gemini client: %w", err)
		}
		model = g
	}
	analyst := agent.NewAnalyst(model)
	analyst.Language = cfg.Google.Language

	j := &diary.Journal{
		Resolver: agent.NewResolver(model),
		Fetcher:  diary.NewFetcher(newProvider(cfg)),
		Analyst:  analyst,
		Status:   cfg.Notion.Status,
	}
	if cfg.HasNotion() {
		p, err := notion.New(cfg.Notion.Token, cfg.Notion.DatabaseID)
		if err != nil {
			return nil, fmt.Errorf("cannot create Notion client: %w", err)
		}
		j.Publisher = p
	}
	return j, nil
}

// openJournal loads the configuration and builds the journal, reporting failures on stderr.
func openJournal(ctx context.Context) (*diary.Journal, bool) {
	cfg, ok := loadConfig()
	if !ok {
		return nil, false
	}
	j, err := newJournal(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}
	return j, true
}

// describe returns the user message for an analysis error.
func describe(input string, err error) string {
	switch {
	case errors.Is(err, diary.ErrTickerNotFound):
		return fmt.Sprintf("Ticker not found for %q: check the ticker or the company name.", input)
	case errors.Is(err, diary.ErrNothingToSave):
		return "Nothing to save: analyze a ticker first."
	case errors.Is(err, diary.ErrNoPublisher):
		return "Configuration missing: set NOTION_TOKEN and NOTION_DB_ID to save records (see 'diary topic config')."
	}
	return fmt.Sprintf("Error: %v", err)
}
