package extractor

import (
	"regexp"
	"strings"
)

// crimeKeywords drive the sentence filter; matched case-insensitively as
// substrings, so "arrested" and "killing" count.
var crimeKeywords = []string{
	"crime", "murder", "theft", "assault", "robbery",
	"arrest", "convict", "kill", "attack",
}

// nameDenylist holds two-word capitalized phrases that are known not to be
// person names: places, institutions, boilerplate.
var nameDenylist = map[string]struct{}{
	"new york":          {},
	"los angeles":       {},
	"san francisco":     {},
	"united states":     {},
	"supreme court":     {},
	"district court":    {},
	"police department": {},
	"crime report":      {},
	"crime data":        {},
	"press release":     {},
	"privacy policy":    {},
	"terms of":          {},
	"all rights":        {},
	"read more":         {},
	"contact us":        {},
	"about us":          {},
}

var (
	nameRe      = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	monthDateRe = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}\b`)
	isoDateRe   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	sentenceRe  = regexp.MustCompile(`[.!?]\s+`)
)

// candidateNames returns deduplicated two-capitalized-word phrases that are
// not on the denylist.
func candidateNames(text string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range nameRe.FindAllString(text, -1) {
		if _, deny := nameDenylist[strings.ToLower(m)]; deny {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		names = append(names, m)
	}
	return names
}

// candidateDates returns date-like substrings in "Month D, YYYY" or
// "YYYY-MM-DD" form, deduplicated, first-seen order.
func candidateDates(text string) []string {
	var dates []string
	seen := make(map[string]struct{})
	for _, re := range []*regexp.Regexp{monthDateRe, isoDateRe} {
		for _, m := range re.FindAllString(text, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			dates = append(dates, m)
		}
	}
	return dates
}

// crimeSentences splits the plain text into sentences and keeps those
// containing a crime keyword.
func crimeSentences(text string) []string {
	var kept []string
	for _, s := range sentenceRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		for _, kw := range crimeKeywords {
			if strings.Contains(lower, kw) {
				kept = append(kept, s)
				break
			}
		}
	}
	return kept
}
