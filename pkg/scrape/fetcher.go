package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type (
	// Fetcher retrieves raw page bytes. Network retrieval is a collaborator;
	// everything interesting happens after the HTML is in hand.
	Fetcher interface {
		Fetch(ctx context.Context, url string) ([]byte, error)
	}

	httpFetcher struct {
		client *resty.Client
	}
)

func NewHTTPFetcher() Fetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", url, res.StatusCode())
	}
	return res.Body(), nil
}
