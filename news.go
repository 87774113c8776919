package diary

import (
	"fmt"
	"log"
)

// Default values of a NewsItem field when no extractor finds it.
const (
	DefaultTitle     = "No title"
	DefaultLink      = "#"
	DefaultPublisher = "Unknown"
)

// Extractor reads one candidate value for a field out of a raw news record.
type Extractor struct {
	Name string
	Get  func(item map[string]any) (any, bool)
}

// Key extracts the top level field name.
func Key(name string) Extractor {
	return Extractor{
		Name: name,
		Get: func(item map[string]any) (any, bool) {
			v, ok := item[name]
			return v, ok && v != nil
		},
	}
}

// Path extracts a field nested in sub-records, e.g. Path("canonicalUrl", "url").
func Path(names ...string) Extractor {
	return Extractor{
		Name: fmt.Sprint(names),
		Get: func(item map[string]any) (any, bool) {
			var cur any = item
			for _, name := range names {
				m, ok := cur.(map[string]any)
				if !ok {
					return nil, false
				}
				if cur, ok = m[name]; !ok || cur == nil {
					return nil, false
				}
			}
			return cur, true
		},
	}
}

// Ordered fallbacks for each NewsItem field, first present wins.
var (
	TitleExtractors     = []Extractor{Key("title"), Key("headline")}
	LinkExtractors      = []Extractor{Key("link"), Key("url"), Path("canonicalUrl", "url")}
	PublisherExtractors = []Extractor{Key("publisher"), Key("source"), Path("provider", "displayName")}
)

// firstPresent returns the value of the first extractor that finds one.
func firstPresent(item map[string]any, extractors []Extractor) (any, bool) {
	for _, e := range extractors {
		if v, ok := e.Get(item); ok {
			return v, true
		}
	}
	return nil, false
}

// NormalizeNews maps raw provider news items into NewsItem values.
//
// Entries that are not records are skipped. Each record is normalized on its
// own: one malformed record never drops the others. The result is not
// truncated, callers display as many items as they see fit.
func NormalizeNews(raw []any) []NewsItem {
	news := make([]NewsItem, 0, len(raw))
	for i, r := range raw {
		item, ok := r.(map[string]any)
		if !ok {
			continue
		}
		n, err := normalizeItem(item)
		if err != nil {
			log.Printf("skipping news item #%d: %v", i, err)
			continue
		}
		news = append(news, n)
	}
	return news
}

func normalizeItem(item map[string]any) (n NewsItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed news item: %v", r)
		}
	}()

	// Recent Yahoo payloads wrap the article in a "content" record.
	if content, ok := item["content"].(map[string]any); ok {
		item = content
	}

	n.Title = DefaultTitle
	if v, ok := firstPresent(item, TitleExtractors); ok {
		n.Title = text(v)
	}

	n.Link = DefaultLink
	if v, ok := firstPresent(item, LinkExtractors); ok {
		n.Link = link(v)
	}

	n.Publisher = DefaultPublisher
	if v, ok := firstPresent(item, PublisherExtractors); ok {
		n.Publisher = text(v)
	}
	return n, nil
}

// link reads a link value, that can be either a plain URL or a record holding it.
func link(v any) string {
	if m, ok := v.(map[string]any); ok {
		v, ok = m["url"]
		if !ok {
			return DefaultLink
		}
	}
	if s := text(v); s != "" {
		return s
	}
	return DefaultLink
}

func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
