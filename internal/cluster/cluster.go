// Package cluster infers which areas of life (home, work, health, ...) a piece
// of text belongs to.
//
// Free-form tags (#hashtags, [brackets]) are accepted as-is; the remaining
// rules only report clusters from a known vocabulary or fixed cue tables.
package cluster

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultClusters is the vocabulary used when the caller supplies none.
var DefaultClusters = []string{"home", "work", "colton", "games", "crochet", "spiritual", "health", "finance"}

// Set holds cluster identifiers without duplicates.
type Set map[string]struct{}

func (s Set) Add(ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[id] = struct{}{}
	}
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the identifiers in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Tag runs every rule over text and returns the union of matches. A nil or
// empty known list falls back to DefaultClusters.
func Tag(text string, known []string) Set {
	vocab := Normalize(known)
	if len(vocab) == 0 {
		vocab = DefaultClusters
	}
	result := Set{}
	result.Add(Hashtags(text)...)
	result.Add(Brackets(text)...)
	result.Add(Prepositions(text, vocab)...)
	result.Add(Emoji(text)...)
	result.Add(Keywords(text)...)
	return result
}

var (
	hashtagPattern = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
	bracketPattern = regexp.MustCompile(`[\[{]([A-Za-z0-9 _-]{2,30})[\]}]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Hashtags returns the lowercased payload of every #tag. The # must start the
// text or follow a non-word character, so "C#" and "a#b" are ignored.
func Hashtags(text string) []string {
	found := []string{}
	for _, loc := range hashtagPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > 0 && isWordByte(text[loc[0]-1]) {
			continue
		}
		payload := text[loc[2]:loc[3]]
		if len(payload) < 2 || len(payload) > 30 {
			continue
		}
		found = append(found, strings.ToLower(payload))
	}
	return found
}

// Brackets returns the payload of [tag] and {tag} spans, lowercased with
// inner whitespace turned into hyphens.
func Brackets(text string) []string {
	found := []string{}
	for _, m := range bracketPattern.FindAllStringSubmatch(text, -1) {
		payload := strings.TrimSpace(m[1])
		if payload == "" {
			continue
		}
		found = append(found, spacePattern.ReplaceAllString(strings.ToLower(payload), "-"))
	}
	return found
}

// Prepositions reports known clusters introduced by a cue such as
// "for colton", "in work", "re: finance" or "about health".
func Prepositions(text string, known []string) []string {
	alts := make([]string, 0, len(known))
	for _, name := range known {
		if name != "" {
			alts = append(alts, regexp.QuoteMeta(name))
		}
	}
	found := []string{}
	if len(alts) == 0 {
		return found
	}
	// Longer names first so "home-repair" wins over "home".
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	pattern := regexp.MustCompile(`(?i)(?:\b(?:for|in|about|re ->)\s+|\bre:\s*)(` + strings.Join(alts, "|") + `)\b`)
	hits := map[string]bool{}
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		hits[strings.ToLower(m[1])] = true
	}
	for _, name := range known {
		if name != "" && hits[strings.ToLower(name)] {
			found = append(found, name)
			delete(hits, strings.ToLower(name))
		}
	}
	return found
}

// Normalize trims, lowercases and deduplicates a cluster vocabulary,
// keeping first-seen order.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Label pretty-cases an identifier for display: "home-repair" → "Home Repair".
func Label(id string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(id))
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
