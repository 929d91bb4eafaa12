package fetcher

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsGate is an opt-in politeness check. Parsed robots.txt data is
// cached per host; hosts whose robots.txt cannot be fetched or parsed are
// treated as allowing everything.
type robotsGate struct {
	client *http.Client
	cache  sync.Map
}

func newRobotsGate(timeout time.Duration) *robotsGate {
	return &robotsGate{client: &http.Client{Timeout: timeout}}
}

// allowed reports whether the wildcard agent may fetch u.
func (g *robotsGate) allowed(u *url.URL) bool {
	if u.Host == "" {
		return true
	}
	if val, ok := g.cache.Load(u.Host); ok {
		if val == nil {
			return true
		}
		return val.(*robotstxt.RobotsData).TestAgent(u.Path, "*")
	}

	resp, err := g.client.Get(u.Scheme + "://" + u.Host + "/robots.txt")
	if err != nil {
		g.cache.Store(u.Host, nil)
		return true
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		g.cache.Store(u.Host, nil)
		return true
	}
	g.cache.Store(u.Host, data)
	return data.TestAgent(u.Path, "*")
}
