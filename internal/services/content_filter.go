package services

import "regexp"

// BlockedWords is the default deny list for motivational messages.
var BlockedWords = []string{
	"spam", "scam", "scammer", "phishing", "malware",
	"idiot", "stupid", "loser", "useless", "worthless",
	"fired", "quit", "lazy",
}

// ContentFilter flags text containing blocked words, matched on word
// boundaries and case-insensitively.
type ContentFilter struct {
	patterns []*regexp.Regexp
}

func NewContentFilter(words []string) *ContentFilter {
	f := &ContentFilter{patterns: make([]*regexp.Regexp, 0, len(words))}
	for _, word := range words {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err == nil {
			f.patterns = append(f.patterns, re)
		}
	}
	return f
}

func (f *ContentFilter) Flagged(text string) bool {
	if f == nil || text == "" {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
