// Package sportsref retrieves college-basketball season pages over HTTP
// and lowers their stat tables into raw rows keyed by data-stat cell
// names. It is the live backing for the provider contract; the core never
// sees the HTML.
package sportsref

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

const (
	BaseURL   = "https://www.sports-reference.com/cbb"
	userAgent = "athena/1.0 (github.com/fortuna/athena)"
	timeout   = 30 * time.Second
)

// Client fetches and lowers season pages.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client. An empty baseURL selects the live site; tests
// point it at a local server.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// SeasonIndex fetches the index page(s) for one season or date range and
// returns the lowered rows in page order.
func (c *Client) SeasonIndex(ctx context.Context, kind scheme.Kind, identifier string) ([]provider.IndexedRow, error) {
	switch kind {
	case scheme.KindTeamSeason:
		doc, err := c.fetch(ctx, fmt.Sprintf("%s/seasons/%s-school-stats.html", c.baseURL, identifier))
		if err != nil {
			return nil, err
		}
		return parseSchoolStats(doc), nil

	case scheme.KindBoxscore:
		return c.fetchScoreboards(ctx, identifier)

	case scheme.KindPlayerSeason:
		year, team, err := splitRosterIdentifier(identifier)
		if err != nil {
			return nil, err
		}
		doc, err := c.fetch(ctx, fmt.Sprintf("%s/schools/%s/%s.html", c.baseURL, slugify(team), year))
		if err != nil {
			return nil, err
		}
		return parseRoster(doc), nil

	default:
		return nil, fmt.Errorf("unsupported index kind %q", kind)
	}
}

// Entity resolves a single key, fetching whichever page carries it.
func (c *Client) Entity(ctx context.Context, kind scheme.Kind, identifier, key string) (extract.RawRow, error) {
	switch kind {
	case scheme.KindBoxscore:
		doc, err := c.fetch(ctx, fmt.Sprintf("%s/boxscores/%s.html", c.baseURL, strings.ToLower(key)))
		if err != nil {
			return nil, err
		}
		return parseBoxscorePage(doc, strings.ToLower(key)), nil

	case scheme.KindTeamSeason, scheme.KindPlayerSeason:
		rows, err := c.SeasonIndex(ctx, kind, identifier)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if strings.EqualFold(row.Key, key) {
				return row.Row, nil
			}
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported entity kind %q", kind)
	}
}

// fetchScoreboards walks the days of a range, one scoreboard page each.
// The collection still sees a single retrieval for the whole range.
func (c *Client) fetchScoreboards(ctx context.Context, identifier string) ([]provider.IndexedRow, error) {
	from, to, err := splitRangeIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	var rows []provider.IndexedRow
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		url := fmt.Sprintf("%s/boxscores/index.cgi?month=%d&day=%d&year=%d",
			c.baseURL, day.Month(), day.Day(), day.Year())
		doc, err := c.fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parseScoreboard(doc, day.Format("2006-01-02"))...)
	}
	return rows, nil
}

func (c *Client) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	log.Printf("[sportsref] GET %s", url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}

func splitRosterIdentifier(identifier string) (year, team string, err error) {
	parts := strings.SplitN(identifier, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("roster identifier %q: want year/team", identifier)
	}
	return parts[0], parts[1], nil
}

func splitRangeIdentifier(identifier string) (from, to time.Time, err error) {
	parts := strings.SplitN(identifier, ":", 2)
	if len(parts) != 2 {
		return from, to, fmt.Errorf("range identifier %q: want from:to", identifier)
	}
	from, err = time.Parse("2006-01-02", parts[0])
	if err != nil {
		return from, to, fmt.Errorf("range identifier %q: %w", identifier, err)
	}
	to, err = time.Parse("2006-01-02", parts[1])
	if err != nil {
		return from, to, fmt.Errorf("range identifier %q: %w", identifier, err)
	}
	return from, to, nil
}
