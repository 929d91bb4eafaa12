package extractor

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mireku/crimesift-api/internal/model"
)

// Extractor turns raw HTML into a PageRecord. Parse is a pure function:
// empty or malformed input yields a record with empty collections, never
// an error.
type Extractor interface {
	Parse(rawHTML string, pageURL *url.URL) *model.PageRecord
}

// New creates an extractor for the given mode (model.ModeStructural or
// model.ModeEntities) and dataset-extension allowlist.
func New(mode string, datasetExts []string) Extractor {
	if len(datasetExts) == 0 {
		datasetExts = []string{".csv", ".json", ".pdf"}
	}
	exts := make([]string, len(datasetExts))
	for i, e := range datasetExts {
		exts[i] = strings.ToLower(e)
	}
	return &htmlExtractor{mode: mode, datasetExts: exts}
}

type htmlExtractor struct {
	mode        string
	datasetExts []string
}

var (
	incidentClassRe = regexp.MustCompile(`(?i)crime|incident`)
	emailRe         = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// Parse extracts the structural fields and, in entity mode, the candidate
// names, dates, and crime sentences from the page text.
func (e *htmlExtractor) Parse(rawHTML string, pageURL *url.URL) *model.PageRecord {
	rec := &model.PageRecord{
		URL:       pageURL.String(),
		FetchedAt: time.Now().UTC(),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rec
	}

	// Headings in document order, trimmed, empties dropped.
	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			rec.Headings = append(rec.Headings, t)
		}
	})

	// Tables kept as raw markup when their visible text is non-empty.
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			return
		}
		if markup := outerHTML(s); markup != "" {
			rec.Tables = append(rec.Tables, markup)
		}
	})

	// Free text: paragraphs plus incident-like blocks, first-seen order.
	seenBlocks := make(map[string]struct{})
	appendBlock := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if _, ok := seenBlocks[t]; ok {
			return
		}
		seenBlocks[t] = struct{}{}
		rec.TextBlocks = append(rec.TextBlocks, t)
	}
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		appendBlock(s.Text())
	})
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if incidentClassRe.MatchString(class) {
			appendBlock(s.Text())
		}
	})

	// Links resolved absolute against the page URL, deduplicated.
	seenLinks := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		abs := resolve(pageURL, href)
		if abs == "" {
			return
		}
		if _, ok := seenLinks[abs]; ok {
			return
		}
		seenLinks[abs] = struct{}{}
		rec.Links = append(rec.Links, abs)
		if e.isDatasetLink(abs) {
			rec.DatasetLinks = append(rec.DatasetLinks, abs)
		}
	})

	// Emails over the raw markup, deduplicated as a set.
	seenEmails := make(map[string]struct{})
	for _, m := range emailRe.FindAllString(rawHTML, -1) {
		if _, ok := seenEmails[m]; ok {
			continue
		}
		seenEmails[m] = struct{}{}
		rec.Emails = append(rec.Emails, m)
	}

	if e.mode == model.ModeEntities {
		text := doc.Text()
		rec.CandidateNames = candidateNames(text)
		rec.CandidateDates = candidateDates(text)
		rec.CrimeSentences = crimeSentences(text)
	}

	return rec
}

// isDatasetLink reports whether the URL path ends in an allowlisted extension.
func (e *htmlExtractor) isDatasetLink(abs string) bool {
	u, err := url.Parse(abs)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, ext := range e.datasetExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// outerHTML serializes a selection's nodes back to markup.
func outerHTML(s *goquery.Selection) string {
	var buf bytes.Buffer
	for _, n := range s.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return ""
		}
	}
	return buf.String()
}

// resolve resolves a relative URL against a base URL.
func resolve(base *url.URL, href string) string {
	p, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(p).String()
}
