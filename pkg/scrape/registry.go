package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"cookmemo/domain"

	"github.com/PuerkitoBio/goquery"
)

type (
	// Strategy knows the DOM structure of exactly one recipe site. Adding a
	// site means registering another implementation; dispatch never changes.
	Strategy interface {
		Site() string
		Extract(doc *goquery.Document) (domain.RawExtraction, error)
	}

	Registry struct {
		strategies map[string]Strategy
	}
)

// cookpad is recognized but intentionally unsupported; it gets its own error
// so callers can tell it apart from a plainly unknown host.
const cookpadHost = "cookpad.com"

func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}
	for _, s := range strategies {
		r.strategies[s.Site()] = s
	}
	return r
}

func DefaultRegistry() *Registry {
	return NewRegistry(
		NewKurashiruStrategy(),
		NewDelishKitchenStrategy(),
		NewSirogohanStrategy(),
	)
}

// Resolve picks the strategy for a URL by matching its host against the
// registered sites.
func (r *Registry) Resolve(rawURL string) (Strategy, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q is not a valid url", domain.ErrUnsupportedSource, rawURL)
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	if hostMatches(host, cookpadHost) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCookpadNotSupported, host)
	}

	for site, strategy := range r.strategies {
		if hostMatches(host, site) {
			return strategy, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, host)
}

func hostMatches(host, site string) bool {
	return host == site || strings.HasSuffix(host, "."+site)
}
