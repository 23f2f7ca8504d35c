// Package extract locates and coerces statistic values out of raw table
// rows, driven by a parsing scheme. Every coercion is soft: malformed or
// missing input degrades to an invalid sql.Null* value, never a panic or
// an error, so a legitimate zero stays distinguishable from "no data".
package extract

import (
	"database/sql"
	"math"
	"strconv"
	"strings"

	"github.com/fortuna/athena/internal/scheme"
)

// RawRow is one entity's source data for one period. Its single capability
// is looking up a cell by the selector a parsing scheme declares; the
// underlying shape (HTML row, fixture map) is the provider's business.
type RawRow interface {
	Cell(selector string) (string, bool)
}

// MapRow is a RawRow backed by a plain cell map, used by fixtures and tests.
type MapRow map[string]string

// Cell returns the cell stored under the selector.
func (m MapRow) Cell(selector string) (string, bool) {
	v, ok := m[selector]
	return v, ok
}

// Field locates the raw string for one declared field in a row. Pure
// function of its inputs: undeclared fields, nil rows, and absent or blank
// cells all yield an invalid value.
func Field(sch *scheme.Scheme, row RawRow, name string) sql.NullString {
	attr, ok := sch.Lookup(name)
	if !ok || attr.Derived || row == nil {
		return sql.NullString{}
	}
	cell, ok := row.Cell(attr.Selector)
	if !ok {
		return sql.NullString{}
	}
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: cell, Valid: true}
}

// Int coerces a stored raw value to an integer, soft-null on anything
// non-numeric.
func Int(raw sql.NullString) sql.NullInt64 {
	if !raw.Valid {
		return sql.NullInt64{}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw.String), 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

// Float coerces a stored raw value to a float, accepting percentage-like
// leading-dot forms (".487"), soft-null on anything else.
func Float(raw sql.NullString) sql.NullFloat64 {
	if !raw.Valid {
		return sql.NullFloat64{}
	}
	s := strings.TrimSpace(raw.String)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// Ratio computes num/den rounded to 3 decimal places. A zero denominator
// yields exactly 0.0 rather than null: a shooting percentage with no
// attempts displays as 0. A null operand still propagates null.
func Ratio(num, den sql.NullInt64) sql.NullFloat64 {
	if !num.Valid || !den.Valid {
		return sql.NullFloat64{}
	}
	if den.Int64 == 0 {
		return sql.NullFloat64{Float64: 0.0, Valid: true}
	}
	return sql.NullFloat64{Float64: Round3(float64(num.Int64) / float64(den.Int64)), Valid: true}
}

// DiffInt computes a-b with null propagation. Unlike Ratio there is no
// zero convention here; a missing operand means the difference is unknown.
func DiffInt(a, b sql.NullInt64) sql.NullInt64 {
	if !a.Valid || !b.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: a.Int64 - b.Int64, Valid: true}
}

// DiffFloat computes a-b with null propagation.
func DiffFloat(a, b sql.NullFloat64) sql.NullFloat64 {
	if !a.Valid || !b.Valid {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: a.Float64 - b.Float64, Valid: true}
}

// Round3 rounds to 3 decimal places, the precision the source tables use
// for percentages.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// NullableInt unwraps a nullable int for export rows, nil when invalid.
func NullableInt(v sql.NullInt64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Int64
}

// NullableFloat unwraps a nullable float for export rows, nil when invalid.
func NullableFloat(v sql.NullFloat64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

// NullableStr unwraps a nullable string for export rows, nil when invalid.
func NullableStr(v sql.NullString) interface{} {
	if !v.Valid {
		return nil
	}
	return v.String
}
