package scrape

import (
	"context"
	"errors"
	"testing"

	"cookmemo/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

func TestScraperScrape(t *testing.T) {
	fetcher := &stubFetcher{body: []byte(kurashiruPage)}
	scraper := NewScraper(DefaultRegistry(), fetcher, zap.NewNop())

	payload, err := scraper.Scrape(context.Background(), "https://www.kurashiru.com/recipes/abc")
	require.NoError(t, err)

	require.Equal(t, "豚こま肉じゃが", payload.Title)
	require.Equal(t, "https://www.kurashiru.com/recipes/abc", payload.SourceURL)
	require.Len(t, payload.Ingredients, 2)
	require.Len(t, payload.Steps, 2)
	require.Equal(t, 1, payload.Steps[0].StepNumber)
	require.Equal(t, []string{"https://www.kurashiru.com/recipes/abc"}, fetcher.urls)
}

func TestScraperUnsupportedHostSkipsFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	scraper := NewScraper(DefaultRegistry(), fetcher, zap.NewNop())

	_, err := scraper.Scrape(context.Background(), "https://example.com/recipe/1")
	require.ErrorIs(t, err, domain.ErrUnsupportedSource)
	require.Empty(t, fetcher.urls)
}

func TestScraperFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	scraper := NewScraper(DefaultRegistry(), &stubFetcher{err: fetchErr}, zap.NewNop())

	_, err := scraper.Scrape(context.Background(), "https://www.kurashiru.com/recipes/abc")
	require.ErrorIs(t, err, fetchErr)
}
