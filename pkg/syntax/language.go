package syntax

import (
	"slices"
	"strings"
)

// Language identifies a language profile. The zero value selects no profile.
type Language string

// Language profiles.
const (
	LanguageNone       Language = ""
	LanguagePython     Language = "python"
	LanguageCLike      Language = "clike"
	LanguageECMAScript Language = "ecmascript"
	LanguageMarkup     Language = "markup"
)

// Languages returns the ids of all profiles, in table order.
func Languages() []Language {
	result := make([]Language, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, p.Language)
	}
	return result
}

// ParseLanguage resolves a profile id or one of its aliases.
// The second return value is false when nothing matches.
func ParseLanguage(name string) (Language, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LanguageNone, false
	}
	for _, p := range profiles {
		if string(p.Language) == name || slices.Contains(p.Aliases, name) {
			return p.Language, true
		}
	}
	return LanguageNone, false
}

// IsKnown reports whether l names a profile.
func (l Language) IsKnown() bool {
	_, ok := Lookup(l)
	return ok
}

func (l Language) String() string {
	if l == LanguageNone {
		return "none"
	}
	return string(l)
}
