package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/singleflight"
	"resty.dev/v3"

	"blinds/storefront/internal/cache"
	"blinds/storefront/internal/config"
	"blinds/storefront/internal/domain"
)

const maxErrorBody = 256

type CatalogClient interface {
	ListProducts(ctx context.Context, opts ListOptions) (*domain.ProductsResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.ProductResponse, error)
	Close() error
}

// ListOptions narrows a product listing. Zero values are omitted from the request.
type ListOptions struct {
	Page  int
	Limit int
	Tags  []string
}

type requestKind int

const (
	kindList requestKind = iota
	kindProduct
)

type catalogClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
	cache      cache.Cache
	ttl        time.Duration
	group      singleflight.Group
}

// NewCatalogClient builds a client for baseURL. Responses are reused for
// cfg.Revalidate seconds; failed requests are never retried.
func NewCatalogClient(cfg config.CatalogConfig, baseURL string, responseCache cache.Cache) CatalogClient {
	httpClient := resty.New().
		SetTimeout(cfg.RequestTimeout()).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}
	if responseCache == nil {
		responseCache = cache.NewMemoryCache()
	}

	return &catalogClient{
		rl:         rl,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cache:      responseCache,
		ttl:        cfg.RevalidateWindow(),
	}
}

func (c *catalogClient) ListProducts(ctx context.Context, opts ListOptions) (*domain.ProductsResponse, error) {
	v, err := c.fetch(ctx, c.productsURL(opts), kindList, func(body []byte) (interface{}, error) {
		var out domain.ProductsResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("%w: decode products response: %v", ErrFetchFailed, err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProductsResponse), nil
}

func (c *catalogClient) GetProductBySlug(ctx context.Context, slug string) (*domain.ProductResponse, error) {
	v, err := c.fetch(ctx, c.baseURL+"/api/products/"+url.PathEscape(slug), kindProduct, func(body []byte) (interface{}, error) {
		var out domain.ProductResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("%w: decode product %s: %v", ErrFetchFailed, slug, err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProductResponse), nil
}

func (c *catalogClient) Close() error {
	return c.httpClient.Close()
}

func (c *catalogClient) productsURL(opts ListOptions) string {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if len(opts.Tags) > 0 {
		q.Set("tags", strings.Join(opts.Tags, ","))
	}

	u := c.baseURL + "/api/products"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// decodeFunc turns a raw response body into its typed envelope.
type decodeFunc func(body []byte) (interface{}, error)

// fetch serves target from the cache when fresh. Identical concurrent requests share
// one backend call; a caller whose context ends stops waiting and gets ctx.Err, while
// the shared call still completes and fills the cache for the others. Only bodies that
// decode are cached.
func (c *catalogClient) fetch(ctx context.Context, target string, kind requestKind, decode decodeFunc) (interface{}, error) {
	if body, ok, err := c.cache.Get(ctx, target); err != nil {
		log.WithError(err).WithField("url", target).Warn("Catalog cache read failed")
	} else if ok {
		if v, err := decode(body); err == nil {
			log.WithField("url", target).Debug("Catalog cache hit")
			return v, nil
		}
		log.WithField("url", target).Warn("⚠️ Cached catalog response is unreadable, refetching")
	}

	ch := c.group.DoChan(target, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		raw, err := c.doFetch(fetchCtx, target, kind)
		if err != nil {
			return nil, err
		}

		v, err := decode(raw)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"url":  target,
				"body": truncate(string(raw), maxErrorBody),
			}).Error("❌ Catalog response could not be decoded")
			return nil, err
		}

		if err := c.cache.Set(fetchCtx, target, raw, c.ttl); err != nil {
			log.WithError(err).WithField("url", target).Warn("Catalog cache write failed")
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		log.WithError(ctx.Err()).WithField("url", target).Warn("⚠️ Catalog request abandoned by caller")
		return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (c *catalogClient) doFetch(ctx context.Context, target string, kind requestKind) ([]byte, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		log.WithError(err).WithField("url", target).Error("❌ Catalog request failed")
		return nil, &TransportError{URL: target, Err: err}
	}

	body := resp.String()
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		statusErr := &HTTPStatusError{
			StatusCode: code,
			Status:     resp.Status(),
			URL:        target,
			Body:       truncate(body, maxErrorBody),
			notFound:   kind == kindProduct && code == 404,
		}
		log.WithFields(log.Fields{
			"url":    target,
			"status": code,
			"body":   statusErr.Body,
		}).Error("❌ Catalog returned an error status")
		return nil, statusErr
	}

	return []byte(body), nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
