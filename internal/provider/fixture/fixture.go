// Package fixture serves season data from local JSON files, for tests and
// offline bootstrapping. The file layout mirrors the provider contract:
// <root>/<kind>/<identifier>.json holds one season or range index.
package fixture

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// Provider reads raw rows from fixture files under a root directory.
type Provider struct {
	root string
}

// New creates a fixture provider rooted at dir.
func New(dir string) *Provider {
	return &Provider{root: dir}
}

type fixtureRow struct {
	Key        string            `json:"key"`
	Name       string            `json:"name,omitempty"`
	Rank       *int64            `json:"rank,omitempty"`
	Conference string            `json:"conference,omitempty"`
	Cells      map[string]string `json:"cells"`
}

// SeasonIndex loads the fixture file for one season or range. A missing
// file means no data, not an error.
func (p *Provider) SeasonIndex(ctx context.Context, kind scheme.Kind, identifier string) ([]provider.IndexedRow, error) {
	_ = ctx
	rows, err := p.load(kind, identifier)
	if err != nil {
		return nil, err
	}
	return toIndexedRows(rows), nil
}

// Entity finds one key's row. With an empty identifier every fixture file
// for the kind is scanned, mirroring a provider that can resolve a game
// key on its own.
func (p *Provider) Entity(ctx context.Context, kind scheme.Kind, identifier, key string) (extract.RawRow, error) {
	_ = ctx

	var files []string
	if identifier != "" {
		files = []string{p.path(kind, identifier)}
	} else {
		matches, err := filepath.Glob(filepath.Join(p.root, string(kind), "*.json"))
		if err != nil {
			return nil, fmt.Errorf("scanning %s fixtures: %w", kind, err)
		}
		files = matches
	}

	for _, file := range files {
		rows, err := p.loadFile(file)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if strings.EqualFold(row.Key, key) {
				return extract.MapRow(row.Cells), nil
			}
		}
	}

	return nil, nil
}

func (p *Provider) load(kind scheme.Kind, identifier string) ([]fixtureRow, error) {
	return p.loadFile(p.path(kind, identifier))
}

func (p *Provider) loadFile(path string) ([]fixtureRow, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var rows []fixtureRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding fixture %s: %w", path, err)
	}
	return rows, nil
}

// path maps an identifier to a fixture filename. Identifiers can contain
// "/" (rosters) and ":" (date ranges), which do not belong in filenames.
func (p *Provider) path(kind scheme.Kind, identifier string) string {
	name := strings.NewReplacer("/", "_", ":", "_").Replace(identifier)
	return filepath.Join(p.root, string(kind), name+".json")
}

func toIndexedRows(rows []fixtureRow) []provider.IndexedRow {
	out := make([]provider.IndexedRow, 0, len(rows))
	for _, row := range rows {
		ir := provider.IndexedRow{
			Key:        row.Key,
			Name:       row.Name,
			Conference: row.Conference,
			Row:        extract.MapRow(row.Cells),
		}
		if row.Rank != nil {
			ir.Rank = sql.NullInt64{Int64: *row.Rank, Valid: true}
		}
		out = append(out, ir)
	}
	return out
}
