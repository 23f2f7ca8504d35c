package sportsref

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
)

// rowCells snapshots every data-stat cell of a table row into a plain
// map. The raw row never holds a live reference to the document.
func rowCells(tr *goquery.Selection) extract.MapRow {
	cells := extract.MapRow{}
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		if stat, ok := cell.Attr("data-stat"); ok && stat != "" {
			cells[stat] = strings.TrimSpace(cell.Text())
		}
	})
	return cells
}

// slugFromHref pulls the path element before the trailing file name, the
// team or player slug in hrefs like /cbb/schools/purdue/2024.html and
// /cbb/players/jamal-shead-1.html.
func slugFromHref(href string, trailing bool) string {
	href = strings.TrimSuffix(href, ".html")
	parts := strings.Split(strings.Trim(href, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	if trailing {
		return parts[len(parts)-1]
	}
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// parseSchoolStats lowers the season school-stats table. The conference
// cell doubles as the top-tier filter: rows without one are left for the
// collection to skip.
func parseSchoolStats(doc *goquery.Document) []provider.IndexedRow {
	var rows []provider.IndexedRow

	doc.Find("table#basic_school_stats tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}

		school := tr.Find("td[data-stat=school_name]")
		name := strings.TrimSpace(school.Text())
		if name == "" {
			return
		}

		key := name
		if href, ok := school.Find("a").Attr("href"); ok {
			if slug := slugFromHref(href, false); slug != "" {
				key = slug
			}
		}

		row := provider.IndexedRow{
			Key:        strings.ToUpper(key),
			Name:       name,
			Conference: strings.TrimSpace(tr.Find("td[data-stat=conf_abbr]").Text()),
			Row:        rowCells(tr),
		}
		if rank, err := strconv.ParseInt(strings.TrimSpace(tr.Find("th[data-stat=ranker]").Text()), 10, 64); err == nil {
			row.Rank = sql.NullInt64{Int64: rank, Valid: true}
		}

		rows = append(rows, row)
	})

	return rows
}

// parseRoster lowers a team page's totals table into one row per player.
func parseRoster(doc *goquery.Document) []provider.IndexedRow {
	var rows []provider.IndexedRow

	doc.Find("table#totals tbody tr").Each(func(_ int, tr *goquery.Selection) {
		playerCell := tr.Find("[data-stat=player]")
		name := strings.TrimSpace(playerCell.Text())
		if name == "" || strings.EqualFold(name, "Team Totals") {
			return
		}

		key := name
		if href, ok := playerCell.Find("a").Attr("href"); ok {
			if slug := slugFromHref(href, true); slug != "" {
				key = slug
			}
		}

		rows = append(rows, provider.IndexedRow{
			Key:  strings.ToLower(key),
			Name: name,
			Row:  rowCells(tr),
		})
	})

	return rows
}

// parseScoreboard lowers one day's game summaries. Summary cards carry
// names and final scores only; the remaining cells stay absent and read
// back as null, with the full stat line available through the single-game
// path.
func parseScoreboard(doc *goquery.Document, date string) []provider.IndexedRow {
	var rows []provider.IndexedRow

	doc.Find("div.game_summary").Each(func(_ int, card *goquery.Selection) {
		cells := extract.MapRow{"date": date}

		var key string
		if href, ok := card.Find("td.gamelink a").Attr("href"); ok {
			key = slugFromHref(href, true)
		}

		teams := card.Find("table.teams tbody tr")
		if teams.Length() < 2 {
			return
		}

		// Away team is listed first on summary cards.
		sides := []string{"away", "home"}
		names := make([]string, 0, 2)
		teams.EachWithBreak(func(i int, tr *goquery.Selection) bool {
			if i >= len(sides) {
				return false
			}
			name := strings.TrimSpace(tr.Find("td a").First().Text())
			cells[sides[i]+"_name"] = name
			cells[sides[i]+"_pts"] = strings.TrimSpace(tr.Find("td.right").First().Text())
			names = append(names, name)
			return true
		})

		if key == "" {
			// No boxscore link yet; synthesize a stable key.
			key = date + "-" + slugify(cells["home_name"])
		}

		rows = append(rows, provider.IndexedRow{
			Key:  strings.ToLower(key),
			Name: names[0] + " at " + names[1],
			Row:  cells,
		})
	})

	return rows
}

// parseBoxscorePage lowers a full game page into one prefixed row: the
// two basic stat tables' total lines become home_/away_ cells.
func parseBoxscorePage(doc *goquery.Document, key string) extract.RawRow {
	cells := extract.MapRow{}
	if len(key) >= 10 {
		cells["date"] = key[:10]
	}

	tables := doc.Find("table[id^=box-score-basic]")
	if tables.Length() < 2 {
		return nil
	}

	// Away team's table precedes the home team's.
	sides := []string{"away", "home"}
	tables.EachWithBreak(func(i int, table *goquery.Selection) bool {
		if i >= len(sides) {
			return false
		}

		if id, ok := table.Attr("id"); ok {
			cells[sides[i]+"_name"] = nameFromTableID(id)
		}

		total := table.Find("tfoot tr").First()
		total.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if stat, ok := cell.Attr("data-stat"); ok && stat != "" && stat != "player" {
				cells[sides[i]+"_"+stat] = strings.TrimSpace(cell.Text())
			}
		})
		return true
	})

	return cells
}

// nameFromTableID recovers a display name from ids like
// box-score-basic-purdue.
func nameFromTableID(id string) string {
	slug := strings.TrimPrefix(id, "box-score-basic-")
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
