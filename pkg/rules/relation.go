package rules

// Relation identifies one of the supported condition relations. Numeric
// relations coerce both sides to floating point so that version strings
// compare numerically, not lexicographically.
type Relation int

const (
	RelationLt Relation = iota // <
	RelationLe                 // <=
	RelationEq                 // ==
	RelationNe                 // !=
	RelationGe                 // >=
	RelationGt                 // >
	RelationIs                 // exact string equality
	RelationIn                 // membership in a comma-separated set
	RelationLike               // regexp search match
)

var relationWords = map[string]Relation{
	"<":    RelationLt,
	"<=":   RelationLe,
	"==":   RelationEq,
	"!=":   RelationNe,
	">=":   RelationGe,
	">":    RelationGt,
	"is":   RelationIs,
	"in":   RelationIn,
	"like": RelationLike,
}

// ParseRelation maps a relation word to its Relation. The second result
// is false for an unknown word.
func ParseRelation(word string) (Relation, bool) {
	r, ok := relationWords[word]
	return r, ok
}

// Numeric reports whether the relation compares floating-point values
func (r Relation) Numeric() bool {
	switch r {
	case RelationLt, RelationLe, RelationEq, RelationNe, RelationGe, RelationGt:
		return true
	}
	return false
}

func (r Relation) String() string {
	switch r {
	case RelationLt:
		return "<"
	case RelationLe:
		return "<="
	case RelationEq:
		return "=="
	case RelationNe:
		return "!="
	case RelationGe:
		return ">="
	case RelationGt:
		return ">"
	case RelationIs:
		return "is"
	case RelationIn:
		return "in"
	case RelationLike:
		return "like"
	}
	return "unknown"
}

func (r Relation) compareFloats(lhs, rhs float64) bool {
	switch r {
	case RelationLt:
		return lhs < rhs
	case RelationLe:
		return lhs <= rhs
	case RelationEq:
		return lhs == rhs
	case RelationNe:
		return lhs != rhs
	case RelationGe:
		return lhs >= rhs
	case RelationGt:
		return lhs > rhs
	}
	return false
}
