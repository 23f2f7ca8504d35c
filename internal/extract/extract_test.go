package extract

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/scheme"
)

func TestFieldTrimsAndNullsBlanks(t *testing.T) {
	sch := scheme.TeamSeason()
	row := MapRow{
		"wins":   " 23 ",
		"losses": "",
		"srs":    "   ",
	}

	tests := []struct {
		name  string
		field string
		want  sql.NullString
	}{
		{"trimmed value", "wins", sql.NullString{String: "23", Valid: true}},
		{"empty cell", "losses", sql.NullString{}},
		{"whitespace cell", "simple_rating_system", sql.NullString{}},
		{"absent cell", "assists", sql.NullString{}},
		{"undeclared field", "elo_rating", sql.NullString{}},
		{"derived field", "win_percentage", sql.NullString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(sch, row, tt.field))
		})
	}
}

func TestFieldNilRow(t *testing.T) {
	sch := scheme.TeamSeason()
	assert.Equal(t, sql.NullString{}, Field(sch, nil, "wins"))
}

func TestIntCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  sql.NullString
		want sql.NullInt64
	}{
		{"plain integer", sql.NullString{String: "27", Valid: true}, sql.NullInt64{Int64: 27, Valid: true}},
		{"zero", sql.NullString{String: "0", Valid: true}, sql.NullInt64{Int64: 0, Valid: true}},
		{"negative", sql.NullString{String: "-3", Valid: true}, sql.NullInt64{Int64: -3, Valid: true}},
		{"padded", sql.NullString{String: " 14 ", Valid: true}, sql.NullInt64{Int64: 14, Valid: true}},
		{"malformed", sql.NullString{String: "abc", Valid: true}, sql.NullInt64{}},
		{"float-shaped", sql.NullString{String: "12.5", Valid: true}, sql.NullInt64{}},
		{"null in", sql.NullString{}, sql.NullInt64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.raw))
		})
	}
}

func TestFloatCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  sql.NullString
		want sql.NullFloat64
	}{
		{"plain float", sql.NullString{String: "112.4", Valid: true}, sql.NullFloat64{Float64: 112.4, Valid: true}},
		{"leading dot", sql.NullString{String: ".487", Valid: true}, sql.NullFloat64{Float64: 0.487, Valid: true}},
		{"negative leading dot", sql.NullString{String: "-.125", Valid: true}, sql.NullFloat64{Float64: -0.125, Valid: true}},
		{"integer-shaped", sql.NullString{String: "75", Valid: true}, sql.NullFloat64{Float64: 75, Valid: true}},
		{"malformed", sql.NullString{String: "n/a", Valid: true}, sql.NullFloat64{}},
		{"null in", sql.NullString{}, sql.NullFloat64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Float(tt.raw))
		})
	}
}

func TestRatio(t *testing.T) {
	valid := func(v int64) sql.NullInt64 { return sql.NullInt64{Int64: v, Valid: true} }

	tests := []struct {
		name string
		num  sql.NullInt64
		den  sql.NullInt64
		want sql.NullFloat64
	}{
		{"simple ratio", valid(10), valid(20), sql.NullFloat64{Float64: 0.5, Valid: true}},
		{"rounds to three places", valid(1), valid(3), sql.NullFloat64{Float64: 0.333, Valid: true}},
		{"rounds up", valid(2), valid(3), sql.NullFloat64{Float64: 0.667, Valid: true}},
		{"zero denominator is zero, not null", valid(0), valid(0), sql.NullFloat64{Float64: 0.0, Valid: true}},
		{"nonzero over zero is still zero", valid(5), valid(0), sql.NullFloat64{Float64: 0.0, Valid: true}},
		{"null numerator", sql.NullInt64{}, valid(20), sql.NullFloat64{}},
		{"null denominator", valid(10), sql.NullInt64{}, sql.NullFloat64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.num, tt.den))
		})
	}
}

func TestDiffPropagatesNull(t *testing.T) {
	valid := func(v int64) sql.NullInt64 { return sql.NullInt64{Int64: v, Valid: true} }

	assert.Equal(t, sql.NullInt64{Int64: 12, Valid: true}, DiffInt(valid(40), valid(28)))
	assert.Equal(t, sql.NullInt64{}, DiffInt(sql.NullInt64{}, valid(28)))
	assert.Equal(t, sql.NullInt64{}, DiffInt(valid(40), sql.NullInt64{}))

	vf := func(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }
	assert.Equal(t, sql.NullFloat64{Float64: 4.5, Valid: true}, DiffFloat(vf(110.0), vf(105.5)))
	assert.Equal(t, sql.NullFloat64{}, DiffFloat(sql.NullFloat64{}, vf(105.5)))
}

func TestNullableUnwrapping(t *testing.T) {
	assert.Nil(t, NullableInt(sql.NullInt64{}))
	assert.Equal(t, int64(7), NullableInt(sql.NullInt64{Int64: 7, Valid: true}))

	assert.Nil(t, NullableFloat(sql.NullFloat64{}))
	assert.Equal(t, 0.5, NullableFloat(sql.NullFloat64{Float64: 0.5, Valid: true}))

	assert.Nil(t, NullableStr(sql.NullString{}))
	assert.Equal(t, "ACC", NullableStr(sql.NullString{String: "ACC", Valid: true}))
}

func TestBaseStartsAllNull(t *testing.T) {
	sch := scheme.TeamSeason()
	b := NewBase(sch)

	for _, a := range sch.Attributes() {
		if a.Derived {
			continue
		}
		assert.False(t, b.Raw(a.Name).Valid, "attribute %s should start null", a.Name)
	}
}

func TestBasePopulateAndReread(t *testing.T) {
	sch := scheme.TeamSeason()
	b := NewBase(sch)
	b.Populate(MapRow{
		"wins":    "23",
		"losses":  "eight", // malformed on purpose
		"off_rtg": "112.4",
	})

	require.Equal(t, sql.NullInt64{Int64: 23, Valid: true}, b.IntAttr("wins"))
	assert.Equal(t, sql.NullFloat64{Float64: 112.4, Valid: true}, b.FloatAttr("offensive_rating"))

	// Malformed cells survive as raw strings and read back null every time.
	assert.Equal(t, sql.NullString{String: "eight", Valid: true}, b.Raw("losses"))
	assert.Equal(t, sql.NullInt64{}, b.IntAttr("losses"))
	assert.Equal(t, sql.NullInt64{}, b.IntAttr("losses"))
}

func TestBasePopulateNilRowIsNoop(t *testing.T) {
	b := NewBase(scheme.TeamSeason())
	b.Populate(nil)
	assert.False(t, b.IntAttr("wins").Valid)
}
