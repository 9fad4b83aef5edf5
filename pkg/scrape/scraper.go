package scrape

import (
	"bytes"
	"context"
	"fmt"

	"cookmemo/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Scraper resolves a URL to a site strategy, fetches the page and produces
// the canonical creation payload.
type Scraper struct {
	registry *Registry
	fetcher  Fetcher
	log      *zap.Logger
}

func NewScraper(registry *Registry, fetcher Fetcher, log *zap.Logger) *Scraper {
	return &Scraper{registry: registry, fetcher: fetcher, log: log}
}

func (s *Scraper) Scrape(ctx context.Context, sourceURL string) (domain.RecipePayload, error) {
	strategy, err := s.registry.Resolve(sourceURL)
	if err != nil {
		return domain.RecipePayload{}, err
	}

	body, err := s.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return domain.RecipePayload{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.RecipePayload{}, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	raw, err := strategy.Extract(doc)
	if err != nil {
		return domain.RecipePayload{}, err
	}

	s.log.Info("scraped recipe page",
		zap.String("site", strategy.Site()),
		zap.String("title", raw.Title),
		zap.Int("ingredients", len(raw.Ingredients)),
		zap.Int("steps", len(raw.Steps)),
	)

	return Normalize(raw, sourceURL), nil
}
