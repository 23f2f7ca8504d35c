// Package provider defines the page-data collaborator the stat entities
// are built from. Implementations may scrape live pages, read local
// fixtures, or decorate another provider; the core only sees raw rows.
package provider

import (
	"context"
	"database/sql"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/scheme"
)

// IndexedRow is one entity's raw row plus the auxiliary metadata the index
// page carries alongside it. Rows are returned in source order; collection
// construction order follows it.
type IndexedRow struct {
	Key        string
	Name       string
	Rank       sql.NullInt64
	Conference string
	Row        extract.RawRow
}

// Provider supplies raw season/game data. A collection calls SeasonIndex
// exactly once per season or date range and reuses the result for every
// member entity; Entity serves the directly-constructed single-entity
// path.
//
// "No data" is not an error: SeasonIndex may return an empty slice and
// Entity a nil row. Callers building entities treat errors and missing
// rows alike, as an all-null entity.
type Provider interface {
	SeasonIndex(ctx context.Context, kind scheme.Kind, identifier string) ([]IndexedRow, error)
	Entity(ctx context.Context, kind scheme.Kind, identifier, key string) (extract.RawRow, error)
}
