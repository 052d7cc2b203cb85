package device

import "strings"

// Type is the kind of hardware a Device represents.
type Type string

const (
	TypeTablet     Type = "Tablet"
	TypeSmartPhone Type = "SmartPhone"
	TypeNotebook   Type = "Notebook"
)

// Types lists every defined Type in declaration order.
var Types = []Type{TypeTablet, TypeSmartPhone, TypeNotebook}

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeTablet, TypeSmartPhone, TypeNotebook:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// ParseType matches s against the defined types ignoring case and
// surrounding whitespace.
func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}
