package cluster

import (
	"regexp"
	"strings"
)

// minKeywordHits is how many distinct keywords of one cluster must appear
// before the cluster is reported. A single common word ("clean") is noise.
const minKeywordHits = 2

var emojiCues = []struct {
	cluster string
	emoji   []string
}{
	{cluster: "home", emoji: []string{"🏠", "🏡", "🧹", "🧺", "🛋", "🪴"}},
	{cluster: "work", emoji: []string{"💼", "👨‍💻", "👩‍💻", "🧑‍💻", "💻"}},
}

var keywordTable = []struct {
	cluster  string
	keywords []string
}{
	{cluster: "home", keywords: []string{"clean", "kitchen", "laundry", "trash", "dishes", "vacuum", "mop", "groceries", "yard", "garage", "bathroom", "chores"}},
	{cluster: "work", keywords: []string{"meeting", "email", "report", "deadline", "client", "project", "standup", "presentation", "review", "sprint", "manager"}},
	{cluster: "health", keywords: []string{"doctor", "dentist", "gym", "workout", "run", "meds", "medicine", "appointment", "therapy", "sleep", "vitamins"}},
	{cluster: "finance", keywords: []string{"budget", "bill", "bills", "bank", "taxes", "invoice", "pay", "rent", "savings", "mortgage", "insurance"}},
	{cluster: "games", keywords: []string{"game", "games", "play", "steam", "xbox", "playstation", "switch", "raid", "quest", "level"}},
	{cluster: "crochet", keywords: []string{"crochet", "yarn", "hook", "stitch", "stitches", "skein", "pattern", "amigurumi", "granny"}},
}

var (
	coltonPattern = regexp.MustCompile(`(?i)\bcolton\b`)
	wordPattern   = regexp.MustCompile(`[a-z0-9_]+`)
)

// Emoji reports clusters signalled by fixed emoji sets and the word "colton".
func Emoji(text string) []string {
	found := []string{}
	for _, cue := range emojiCues {
		for _, e := range cue.emoji {
			if strings.Contains(text, e) {
				found = append(found, cue.cluster)
				break
			}
		}
	}
	if coltonPattern.MatchString(text) {
		found = append(found, "colton")
	}
	return found
}

// Keywords reports clusters whose keyword list has at least two distinct
// whole-word hits in text.
func Keywords(text string) []string {
	words := map[string]bool{}
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		words[w] = true
	}
	found := []string{}
	for _, row := range keywordTable {
		hits := 0
		for _, kw := range row.keywords {
			if words[kw] {
				hits++
			}
		}
		if hits >= minKeywordHits {
			found = append(found, row.cluster)
		}
	}
	return found
}
