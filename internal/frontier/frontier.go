package frontier

import (
	"strings"
	"sync"
)

// Entry is a discovered-but-not-yet-fetched URL tagged with its origin site
// and a monotonically increasing discovery order.
type Entry struct {
	URL   string
	Site  string
	Order uint64
}

// Frontier is the crawl queue for one site within one run. It keeps the
// visited and pending sets disjoint: a URL never enters pending while
// visited, and never enters twice. Traversal is strictly FIFO.
type Frontier struct {
	mu      sync.Mutex
	site    string
	queue   []Entry
	pending map[string]struct{}
	visited map[string]struct{}
	order   uint64
}

// New creates a frontier scoped to the given site base URL. Only URLs
// prefixed by the base are eligible for enqueue.
func New(site string) *Frontier {
	return &Frontier{
		site:    site,
		pending: make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
}

// Enqueue appends a URL to the pending queue. It is a no-op returning false
// when the URL is already visited, already pending, or outside the site.
func (f *Frontier) Enqueue(rawURL string) bool {
	if !strings.HasPrefix(rawURL, f.site) {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[rawURL]; ok {
		return false
	}
	if _, ok := f.pending[rawURL]; ok {
		return false
	}

	f.order++
	f.pending[rawURL] = struct{}{}
	f.queue = append(f.queue, Entry{URL: rawURL, Site: f.site, Order: f.order})
	return true
}

// Next pops the head of the FIFO queue; ok is false when the queue is empty.
func (f *Frontier) Next() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Entry{}, false
	}
	e := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.pending, e.URL)
	return e, true
}

// MarkVisited records a URL as fetched so it is never dispatched again
// within this run. Callers invoke it right after Next, before the fetch.
func (f *Frontier) MarkVisited(rawURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visited[rawURL] = struct{}{}
}

// PendingCount returns the number of queued URLs.
func (f *Frontier) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// VisitedCount returns the number of URLs already dispatched.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}
