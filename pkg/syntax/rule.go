// Package syntax defines span kinds, per-language rule tables and a cache of
// compiled rule patterns for the highlighter.
package syntax

import (
	"errors"
	"fmt"
	"regexp"
)

// Rule is one entry of a language's rule table.
//
// Pattern is applied to the whole document as a single string. When Group
// is greater than zero only that capture group is tagged; otherwise the
// whole match is. Mask rules (strings and comments) own the text they
// cover: in exclusive highlighting, other rules may not start inside it.
type Rule struct {
	Name    string
	Pattern string
	Kind    Kind
	Group   int
	Mask    bool
}

// Profile is the rule table and file association of one language.
type Profile struct {
	Language   Language
	Title      string
	Aliases    []string
	Extensions []string
	Rules      []Rule
}

// Lookup returns the profile for a language.
func Lookup(lang Language) (Profile, bool) {
	for _, p := range profiles {
		if p.Language == lang {
			return p, true
		}
	}
	return Profile{}, false
}

// RulesFor returns the ordered rules of a profile, from lowest to highest
// precedence. Unknown languages, including LanguageNone, yield nil.
func RulesFor(lang Language) []Rule {
	p, ok := Lookup(lang)
	if !ok {
		return nil
	}
	out := make([]Rule, len(p.Rules))
	copy(out, p.Rules)
	return out
}

// Profiles returns a copy of every built-in profile in table order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Validate checks a profile's rules: every pattern must compile, every
// Group must exist in its pattern, kinds must be valid and names unique.
func (p Profile) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(p.Rules))

	for i, rule := range p.Rules {
		if rule.Name == "" {
			errs = append(errs, fmt.Errorf("%s: rule %d: empty name", p.Language, i))
			continue
		}
		if seen[rule.Name] {
			errs = append(errs, fmt.Errorf("%s/%s: duplicate rule name", p.Language, rule.Name))
		}
		seen[rule.Name] = true

		if !rule.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("%s/%s: invalid kind %d", p.Language, rule.Name, rule.Kind))
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", p.Language, rule.Name, err))
			continue
		}
		if rule.Group < 0 || rule.Group > re.NumSubexp() {
			errs = append(errs, fmt.Errorf("%s/%s: group %d out of range (pattern has %d)",
				p.Language, rule.Name, rule.Group, re.NumSubexp()))
		}
	}

	return errors.Join(errs...)
}

// MustValidate validates every built-in profile and panics on the first
// defective table. It runs at package init.
func MustValidate() {
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("syntax: invalid rule table: %v", err))
		}
	}
}

func init() {
	MustValidate()
}
