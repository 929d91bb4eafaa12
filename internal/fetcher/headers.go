package fetcher

import (
	"math/rand"
	"net/http"
	"sync"
)

// HeaderProvider supplies the request headers for one outgoing fetch.
type HeaderProvider interface {
	Headers() http.Header
}

// rotatingHeaders picks a random User-Agent from a fixed pool per request
// and attaches the standard browsing headers.
type rotatingHeaders struct {
	mu     sync.Mutex
	agents []string
	rnd    *rand.Rand
}

func newRotatingHeaders(agents []string) HeaderProvider {
	if len(agents) == 0 {
		agents = []string{"crimesift-bot/1.0"}
	}
	return &rotatingHeaders{
		agents: agents,
		rnd:    rand.New(rand.NewSource(rand.Int63())),
	}
}

// NewRotatingHeaders returns a HeaderProvider that rotates through the
// given User-Agent pool.
func NewRotatingHeaders(agents []string) HeaderProvider {
	return newRotatingHeaders(agents)
}

func (p *rotatingHeaders) Headers() http.Header {
	p.mu.Lock()
	agent := p.agents[p.rnd.Intn(len(p.agents))]
	p.mu.Unlock()

	h := http.Header{}
	h.Set("User-Agent", agent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	h.Set("Connection", "keep-alive")
	return h
}
