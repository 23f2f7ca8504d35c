package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fortuna/athena/internal/boxscore"
	"github.com/fortuna/athena/internal/frame"
	"github.com/fortuna/athena/internal/player"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/provider/fixture"
	"github.com/fortuna/athena/internal/provider/sportsref"
	"github.com/fortuna/athena/internal/scheme"
	"github.com/fortuna/athena/internal/store"
	"github.com/fortuna/athena/internal/team"
)

const (
	appName    = "athena-export"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	var (
		dataset    = flag.String("dataset", "teams", "What to export: teams, boxscores, or roster")
		year       = flag.Int("year", 0, "Season year (teams, roster)")
		teamAbbr   = flag.String("team", "", "Team abbreviation (roster)")
		startDate  = flag.String("start", "", "Range start date YYYY-MM-DD (boxscores)")
		endDate    = flag.String("end", "", "Range end date YYYY-MM-DD (boxscores)")
		outPath    = flag.String("out", "", "Output CSV path (default stdout)")
		fixtureDir = flag.String("fixtures", getEnv("ATHENA_FIXTURE_DIR", ""), "Fixture directory instead of live pages")
		sourceURL  = flag.String("source", getEnv("ATHENA_SOURCE_BASE_URL", ""), "Page source base URL")
		dsn        = flag.String("dsn", getEnv("ATHENA_POSTGRES_DSN", ""), "Also persist the export to this PostgreSQL DSN")
	)

	flag.Parse()

	var p provider.Provider
	if *fixtureDir != "" {
		p = fixture.New(*fixtureDir)
	} else {
		p = sportsref.New(*sourceURL)
	}

	ctx := context.Background()

	f, season, err := buildFrame(ctx, p, *dataset, *year, *teamAbbr, *startDate, *endDate)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("Built %s table: %d rows, %d columns", *dataset, f.Len(), len(f.Columns()))

	if *dsn != "" {
		db, err := store.NewDatabase(*dsn)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		defer db.Close()
		if err := db.RunMigrations(); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
		if err := db.SaveFrame(ctx, *dataset, season, f); err != nil {
			log.Fatalf("persist export: %v", err)
		}
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		file, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer file.Close()
		out = file
	}

	if err := f.WriteCSV(out); err != nil {
		log.Fatalf("write CSV: %v", err)
	}

	log.Println("✓ Export completed successfully")
}

func buildFrame(ctx context.Context, p provider.Provider, dataset string, year int, teamAbbr, startDate, endDate string) (*frame.Frame, string, error) {
	switch dataset {
	case "teams":
		if year == 0 {
			return nil, "", fmt.Errorf("--year is required for a teams export")
		}
		teams, err := team.Build(ctx, p, scheme.TeamSeason(), year)
		if err != nil {
			return nil, "", err
		}
		return teams.Export(), strconv.Itoa(year), nil

	case "roster":
		if year == 0 || teamAbbr == "" {
			return nil, "", fmt.Errorf("--year and --team are required for a roster export")
		}
		roster, err := player.Build(ctx, p, scheme.PlayerSeason(), year, teamAbbr)
		if err != nil {
			return nil, "", err
		}
		return roster.Export(), player.RosterIdentifier(year, teamAbbr), nil

	case "boxscores":
		from, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, "", fmt.Errorf("--start is required for a boxscores export (YYYY-MM-DD)")
		}
		to, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, "", fmt.Errorf("--end is required for a boxscores export (YYYY-MM-DD)")
		}
		games, err := boxscore.Build(ctx, p, scheme.BoxscoreGame(), from, to)
		if err != nil {
			return nil, "", err
		}
		return games.Export(), boxscore.RangeIdentifier(from, to), nil

	default:
		return nil, "", fmt.Errorf("unknown dataset %q (want teams, boxscores, or roster)", dataset)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
