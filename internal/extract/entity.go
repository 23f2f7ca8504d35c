package extract

import (
	"database/sql"

	"github.com/fortuna/athena/internal/scheme"
)

// Base is the shared shape of every stat entity. It stores the raw string
// for each declared non-derived attribute and re-coerces on every read
// through the typed accessors, so a malformed cell can never poison
// construction: it just reads back as null.
//
// A Base moves through exactly two states: every attribute starts null at
// construction, and a single Populate fills in whatever the raw row
// carries. There is no partial initialization and no later mutation.
type Base struct {
	sch *scheme.Scheme
	raw map[string]sql.NullString
}

// NewBase allocates the attribute storage for a scheme with every declared
// attribute present and null. An entity whose provider returned no data
// stays in this all-null state, which is valid and terminal.
func NewBase(sch *scheme.Scheme) Base {
	raw := make(map[string]sql.NullString, sch.Len())
	for _, a := range sch.Attributes() {
		if a.Derived {
			continue
		}
		raw[a.Name] = sql.NullString{}
	}
	return Base{sch: sch, raw: raw}
}

// Populate runs the field extractor over every declared non-derived
// attribute. The row is not retained.
func (b *Base) Populate(row RawRow) {
	if row == nil {
		return
	}
	for _, a := range b.sch.Attributes() {
		if a.Derived {
			continue
		}
		b.raw[a.Name] = Field(b.sch, row, a.Name)
	}
}

// Scheme returns the parsing scheme this entity was declared against.
func (b *Base) Scheme() *scheme.Scheme {
	return b.sch
}

// Raw returns the stored raw value for a field.
func (b *Base) Raw(name string) sql.NullString {
	return b.raw[name]
}

// IntAttr reads a stored attribute as an integer.
func (b *Base) IntAttr(name string) sql.NullInt64 {
	return Int(b.raw[name])
}

// FloatAttr reads a stored attribute as a float.
func (b *Base) FloatAttr(name string) sql.NullFloat64 {
	return Float(b.raw[name])
}

// StrAttr reads a stored attribute as a string.
func (b *Base) StrAttr(name string) sql.NullString {
	return b.raw[name]
}

// Value reads one extracted attribute as an export cell (nil = null),
// coerced per its declared kind.
func (b *Base) Value(a scheme.Attribute) interface{} {
	switch a.Kind {
	case scheme.Int:
		return NullableInt(b.IntAttr(a.Name))
	case scheme.Float:
		return NullableFloat(b.FloatAttr(a.Name))
	default:
		return NullableStr(b.StrAttr(a.Name))
	}
}
