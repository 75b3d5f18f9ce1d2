package syntax

import (
	"fmt"
	"strings"
)

// Kind classifies a highlighted span. The set is closed.
type Kind uint8

// Span kinds.
const (
	KindKeyword Kind = iota + 1
	KindString
	KindComment
	KindFunction
	KindNumber
	KindClass
	KindOperator
	KindBuiltin
)

//nolint:gochecknoglobals // Lookup table for kind names.
var kindNames = [...]string{
	KindKeyword:  "keyword",
	KindString:   "string",
	KindComment:  "comment",
	KindFunction: "function",
	KindNumber:   "number",
	KindClass:    "class",
	KindOperator: "operator",
	KindBuiltin:  "builtin",
}

// Kinds returns every span kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindKeyword, KindString, KindComment, KindFunction,
		KindNumber, KindClass, KindOperator, KindBuiltin,
	}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindKeyword && k <= KindBuiltin
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid span kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown span kind %q", name)
}
