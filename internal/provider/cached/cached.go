// Package cached decorates a provider with a Redis cache so repeated
// season builds do not refetch unchanged pages. Historical season data is
// effectively immutable, which makes long TTLs safe.
package cached

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

const DefaultTTL = 24 * time.Hour

// Provider wraps another provider with read-through Redis caching.
type Provider struct {
	inner  provider.Provider
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and wraps inner. A zero ttl selects DefaultTTL.
func New(inner provider.Provider, redisURL string, ttl time.Duration) (*Provider, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Provider{inner: inner, client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (p *Provider) Close() error {
	return p.client.Close()
}

type cachedRow struct {
	Key        string            `json:"key"`
	Name       string            `json:"name,omitempty"`
	Rank       *int64            `json:"rank,omitempty"`
	Conference string            `json:"conference,omitempty"`
	Cells      map[string]string `json:"cells"`
}

// SeasonIndex serves a cached index when present, otherwise delegates and
// stores the result. Cache trouble is logged and falls through to the
// inner provider; it never fails a build.
func (p *Provider) SeasonIndex(ctx context.Context, kind scheme.Kind, identifier string) ([]provider.IndexedRow, error) {
	cacheKey := fmt.Sprintf("athena:index:%s:%s", kind, identifier)

	if payload, err := p.client.Get(ctx, cacheKey).Result(); err == nil {
		var rows []cachedRow
		if err := json.Unmarshal([]byte(payload), &rows); err == nil {
			return fromCachedRows(rows), nil
		}
		log.Printf("[cached] corrupt cache entry %s, refetching", cacheKey)
	} else if err != redis.Nil {
		log.Printf("[cached] redis get %s: %v", cacheKey, err)
	}

	rows, err := p.inner.SeasonIndex(ctx, kind, identifier)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(toCachedRows(rows)); err == nil {
		if err := p.client.Set(ctx, cacheKey, payload, p.ttl).Err(); err != nil {
			log.Printf("[cached] redis set %s: %v", cacheKey, err)
		}
	}

	return rows, nil
}

// Entity serves a cached single row when present, otherwise delegates.
func (p *Provider) Entity(ctx context.Context, kind scheme.Kind, identifier, key string) (extract.RawRow, error) {
	cacheKey := fmt.Sprintf("athena:entity:%s:%s:%s", kind, identifier, key)

	if payload, err := p.client.Get(ctx, cacheKey).Result(); err == nil {
		var cells map[string]string
		if err := json.Unmarshal([]byte(payload), &cells); err == nil {
			return extract.MapRow(cells), nil
		}
		log.Printf("[cached] corrupt cache entry %s, refetching", cacheKey)
	} else if err != redis.Nil {
		log.Printf("[cached] redis get %s: %v", cacheKey, err)
	}

	row, err := p.inner.Entity(ctx, kind, identifier, key)
	if err != nil || row == nil {
		return row, err
	}

	if cells, ok := row.(extract.MapRow); ok {
		if payload, err := json.Marshal(cells); err == nil {
			if err := p.client.Set(ctx, cacheKey, payload, p.ttl).Err(); err != nil {
				log.Printf("[cached] redis set %s: %v", cacheKey, err)
			}
		}
	}

	return row, nil
}

func toCachedRows(rows []provider.IndexedRow) []cachedRow {
	out := make([]cachedRow, 0, len(rows))
	for _, row := range rows {
		cr := cachedRow{
			Key:        row.Key,
			Name:       row.Name,
			Conference: row.Conference,
		}
		if row.Rank.Valid {
			rank := row.Rank.Int64
			cr.Rank = &rank
		}
		if cells, ok := row.Row.(extract.MapRow); ok {
			cr.Cells = cells
		}
		out = append(out, cr)
	}
	return out
}

func fromCachedRows(rows []cachedRow) []provider.IndexedRow {
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
