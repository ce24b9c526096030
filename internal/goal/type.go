// File: type.go
// Title: Goal Type Enumeration
// Description: Defines the closed set of goal types and the bijection between
//              types and their two-letter command labels. The tables are
//              initialized once and never mutated, so concurrent reads from
//              multiple parse calls need no locking.
// Version: v0.1.0
// Created: 2025-08-31

package goal

// Type classifies a goal into one of the fixed tracker categories
type Type int

const (
	// TypeDefault is used when no type flag is given
	TypeDefault Type = iota
	TypeSleep
	TypeFood
	TypeExercise
	TypeStudy
)

// Two-letter labels used by the t/ flag of the command language
const (
	LabelSleep    = "sl"
	LabelFood     = "fd"
	LabelExercise = "ex"
	LabelStudy    = "sd"
	LabelDefault  = "df"
)

var labelToType = map[string]Type{
	LabelSleep:    TypeSleep,
	LabelFood:     TypeFood,
	LabelExercise: TypeExercise,
	LabelStudy:    TypeStudy,
	LabelDefault:  TypeDefault,
}

var typeToLabel = map[Type]string{
	TypeSleep:    LabelSleep,
	TypeFood:     LabelFood,
	TypeExercise: LabelExercise,
	TypeStudy:    LabelStudy,
	TypeDefault:  LabelDefault,
}

// String returns the human-readable name of the goal type
func (t Type) String() string {
	switch t {
	case TypeSleep:
		return "Sleep"
	case TypeFood:
		return "Food"
	case TypeExercise:
		return "Exercise"
	case TypeStudy:
		return "Study"
	case TypeDefault:
		return "Default"
	default:
		return "Unknown"
	}
}

// Label returns the two-letter command label for the goal type
func (t Type) Label() string {
	if label, ok := typeToLabel[t]; ok {
		return label
	}
	return LabelDefault
}

// Bracket returns the bracketed marker used in export files, e.g. "[SL]"
func (t Type) Bracket() string {
	switch t {
	case TypeSleep:
		return "[SL]"
	case TypeFood:
		return "[FD]"
	case TypeExercise:
		return "[EX]"
	case TypeStudy:
		return "[SD]"
	default:
		return "[DF]"
	}
}

// ParseLabel maps a two-letter label to its goal type. The second return
// value is false for labels outside the closed set.
func ParseLabel(label string) (Type, bool) {
	t, ok := labelToType[label]
	return t, ok
}

// ParseBracket maps an export file marker back to its goal type. Unknown
// markers map to TypeDefault so hand-edited files stay importable.
func ParseBracket(marker string) Type {
	switch marker {
	case "[SL]":
		return TypeSleep
	case "[FD]":
		return TypeFood
	case "[EX]":
		return TypeExercise
	case "[SD]":
		return TypeStudy
	default:
		return TypeDefault
	}
}

// AllLabels returns the valid labels in their documented order.
func AllLabels() []string {
	return []string{LabelSleep, LabelFood, LabelExercise, LabelStudy, LabelDefault}
}
