package scrape

import (
	"testing"

	"cookmemo/domain"

	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	registry := DefaultRegistry()

	cases := []struct {
		url  string
		site string
	}{
		{"https://www.kurashiru.com/recipes/abc123", "kurashiru.com"},
		{"https://kurashiru.com/recipes/abc123", "kurashiru.com"},
		{"https://delishkitchen.tv/recipes/456", "delishkitchen.tv"},
		{"https://www.sirogohan.com/recipe/nikujaga/", "sirogohan.com"},
	}

	for _, tc := range cases {
		strategy, err := registry.Resolve(tc.url)
		require.NoError(t, err, tc.url)
		require.Equal(t, tc.site, strategy.Site(), tc.url)
	}
}

func TestRegistryResolveUnsupported(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Resolve("https://example.com/recipe/1")
	require.ErrorIs(t, err, domain.ErrUnsupportedSource)

	// subdomain of an unknown host does not match a registered site
	_, err = registry.Resolve("https://kurashiru.com.evil.example/recipes/1")
	require.ErrorIs(t, err, domain.ErrUnsupportedSource)
}

func TestRegistryResolveCookpad(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Resolve("https://cookpad.com/recipe/123")
	require.ErrorIs(t, err, domain.ErrCookpadNotSupported)
	require.NotErrorIs(t, err, domain.ErrUnsupportedSource)

	_, err = registry.Resolve("https://www.cookpad.com/recipe/123")
	require.ErrorIs(t, err, domain.ErrCookpadNotSupported)
}

func TestRegistryResolveInvalidURL(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Resolve("not a url")
	require.ErrorIs(t, err, domain.ErrUnsupportedSource)
}
