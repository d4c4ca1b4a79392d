// Package providers handles streaming provider and locale resolution: turning
// user-configured provider names and locale strings into the canonical forms
// the availability directory understands.
package providers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/language"

	"github.com/vmunix/cullarr/internal/availability"
)

// DefaultLocale is used when locale resolution finds no match.
const DefaultLocale = "en_US"

// suggestionThreshold is the minimum Jaro-Winkler similarity for a provider
// name suggestion to be worth showing.
const suggestionThreshold = 0.8

// Set maps provider ids to their directory records.
type Set map[int]availability.Provider

// ResolveLocale matches a user-supplied locale string against the directory's
// supported locales. Matching is tolerant: "en_US", "en-US", "en" and "US" all
// resolve to en_US. An empty input or no match falls back to DefaultLocale.
func ResolveLocale(input string, supported []availability.Locale) string {
	if input == "" {
		return DefaultLocale
	}

	normalized := strings.ReplaceAll(input, "_", "-")

	// Exact full-locale match first.
	for _, loc := range supported {
		if strings.EqualFold(loc.FullLocale, input) {
			return loc.FullLocale
		}
	}

	// Bare country code ("US", "de").
	for _, loc := range supported {
		if strings.EqualFold(loc.Country, input) || strings.EqualFold(loc.ISO3166, input) {
			return loc.FullLocale
		}
	}

	// BCP 47 parse: match language and, when present, region.
	tag, err := language.Parse(normalized)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	// Only trust an explicitly-spelled region; Parse infers one for bare
	// language inputs like "de".
	region, conf := tag.Region()
	regionExplicit := conf == language.Exact

	for _, loc := range supported {
		lang, country, found := strings.Cut(loc.FullLocale, "_")
		if !found {
			continue
		}
		if !strings.EqualFold(lang, base.String()) {
			continue
		}
		if regionExplicit && !strings.EqualFold(country, region.String()) {
			continue
		}
		return loc.FullLocale
	}

	return DefaultLocale
}

// Resolve maps configured provider names to directory records. Names match
// case-insensitively against clear, short and technical names. Unknown names
// are returned separately so callers can warn or suggest alternatives; an
// empty wanted list yields an empty set.
func Resolve(wanted []string, directory []availability.Provider) (Set, []string) {
	set := make(Set)
	var unknown []string

	for _, name := range wanted {
		p, ok := lookup(name, directory)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		set[p.ID] = p
	}
	return set, unknown
}

func lookup(name string, directory []availability.Provider) (availability.Provider, bool) {
	for _, p := range directory {
		if strings.EqualFold(name, p.ClearName) ||
			strings.EqualFold(name, p.ShortName) ||
			strings.EqualFold(name, p.TechnicalName) {
			return p, true
		}
	}
	return availability.Provider{}, false
}

// Suggest returns the directory provider name closest to the given unknown
// name, or "" when nothing is close enough.
func Suggest(name string, directory []availability.Provider) string {
	var best string
	var bestScore float32

	for _, p := range directory {
		for _, candidate := range []string{p.ClearName, p.TechnicalName} {
			if candidate == "" {
				continue
			}
			score := edlib.JaroWinklerSimilarity(strings.ToLower(name), strings.ToLower(candidate))
			if score > bestScore {
				bestScore = score
				best = p.ClearName
			}
		}
	}

	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}

// Filter keeps only the offers whose provider id is in the set. With an empty
// set nothing passes: no configured providers means no streaming match.
func (s Set) Filter(offers []availability.Offer) []availability.Offer {
	var matched []availability.Offer
	for _, o := range offers {
		if _, ok := s[o.ProviderID]; ok {
			matched = append(matched, o)
		}
	}
	return matched
}

// Contains reports whether the provider id is in the set.
func (s Set) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// ClearNames returns the sorted, deduplicated clear names of the offers'
// providers, resolved through the set.
func (s Set) ClearNames(offers []availability.Offer) []string {
	seen := make(map[string]struct{})
	for _, o := range offers {
		p, ok := s[o.ProviderID]
		if !ok {
			continue
		}
		seen[p.ClearName] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the sorted clear names of all providers in the set.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, p := range s {
		names = append(names, p.ClearName)
	}
	sort.Strings(names)
	return names
}

// ShortNames returns the sorted short names of all providers in the set,
// the form the availability directory's package filter expects.
func (s Set) ShortNames() []string {
	names := make([]string, 0, len(s))
	for _, p := range s {
		names = append(names, p.ShortName)
	}
	sort.Strings(names)
	return names
}

// String formats the set for log output.
func (s Set) String() string {
	return fmt.Sprintf("[%s]", strings.Join(s.Names(), ", "))
}
