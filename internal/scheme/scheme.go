package scheme

// Kind identifies which entity family a parsing scheme describes.
type Kind string

const (
	KindTeamSeason   Kind = "team-season"
	KindBoxscore     Kind = "boxscore"
	KindPlayerSeason Kind = "player-season"
)

// Coercion is how a raw cell value is read.
type Coercion int

const (
	Str Coercion = iota
	Int
	Float
)

// Attribute declares one named statistic: where it lives in a raw row
// (Selector, the data-stat cell name) and how it is coerced. Derived
// attributes are never extracted; they recompute from sibling attributes
// on every read.
type Attribute struct {
	Name     string
	Selector string
	Kind     Coercion
	Derived  bool
}

// Scheme is the immutable mapping from field name to extraction rule for
// one entity kind. Build one instance per kind at startup and share it by
// reference; it is never mutated afterwards.
type Scheme struct {
	kind   Kind
	attrs  []Attribute
	byName map[string]Attribute
}

func newScheme(kind Kind, attrs []Attribute) *Scheme {
	s := &Scheme{
		kind:   kind,
		attrs:  make([]Attribute, len(attrs)),
		byName: make(map[string]Attribute, len(attrs)),
	}
	copy(s.attrs, attrs)
	for i := range s.attrs {
		if s.attrs[i].Selector == "" {
			s.attrs[i].Selector = s.attrs[i].Name
		}
		s.byName[s.attrs[i].Name] = s.attrs[i]
	}
	return s
}

// Kind returns the entity kind this scheme describes.
func (s *Scheme) Kind() Kind {
	return s.kind
}

// Attributes returns the declared attribute list in export column order.
// The returned slice is a copy; callers cannot alter the scheme.
func (s *Scheme) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Lookup returns the declaration for a field name.
func (s *Scheme) Lookup(name string) (Attribute, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Len returns the number of declared attributes, derived included.
func (s *Scheme) Len() int {
	return len(s.attrs)
}
