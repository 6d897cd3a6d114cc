// Package endpoint resolves the base URL of the catalog service and checks that it
// answers.
package endpoint

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"blinds/storefront/internal/config"
)

// Runtime selects which default applies when no endpoint is configured.
type Runtime int

const (
	// RuntimeServer is code running inside the storefront process.
	RuntimeServer Runtime = iota
	// RuntimeBrowser is script running in a visitor's browser.
	RuntimeBrowser
)

const (
	DefaultServerURL  = "http://127.0.0.1:5000"
	DefaultBrowserURL = "http://localhost:5000"
)

// Resolve returns the configured endpoint, preferring the public-exposed variant, or
// the local development default for rt. The result never ends in a slash.
func Resolve(cfg config.CatalogConfig, rt Runtime) string {
	for _, candidate := range []string{cfg.PublicAPIURL, cfg.APIURL} {
		if u := strings.TrimRight(strings.TrimSpace(candidate), "/"); u != "" {
			return u
		}
	}
	if rt == RuntimeBrowser {
		return DefaultBrowserURL
	}
	return DefaultServerURL
}

// Configured reports whether an explicit endpoint is set.
func Configured(cfg config.CatalogConfig) bool {
	return strings.TrimSpace(cfg.PublicAPIURL) != "" || strings.TrimSpace(cfg.APIURL) != ""
}

// Probe issues a one-item listing against baseURL.
func Probe(ctx context.Context, baseURL string, timeout time.Duration) error {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Get(baseURL + "/api/products")
	if err != nil {
		return fmt.Errorf("probe %s: %w", baseURL, err)
	}
	if resp.IsError() {
		return fmt.Errorf("probe %s: status %s", baseURL, resp.Status())
	}
	return nil
}

// CheckOnStart probes the server endpoint and logs the outcome. A failing probe is not
// fatal: pages degrade to empty listings until the catalog answers.
func CheckOnStart(ctx context.Context, cfg config.CatalogConfig) {
	base := Resolve(cfg, RuntimeServer)
	if err := Probe(ctx, base, 5*time.Second); err != nil {
		log.WithError(err).Warnf("❌ Catalog service at %s is not answering", base)
		return
	}
	log.Infof("✅ Catalog service at %s is reachable", base)
}
