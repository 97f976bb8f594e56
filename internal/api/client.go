// Package api fetches portfolio data from the remote site with local fallbacks.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/store"
)

// DefaultBaseURL is the site serving the portfolio endpoints.
const DefaultBaseURL = "https://sreeragh.me"

// DefaultTimeout bounds each HTTP request.
const DefaultTimeout = 5 * time.Second

const maxBodyBytes = 4 << 20

// Cache keys.
const (
	keyPortfolio = "portfolio"
	keyBlog      = "blog"
	keyPostPref  = "blog/"
)

// ErrNotFound is returned when the server has no such resource.
var ErrNotFound = errors.New("not found")

// Source names where data came from.
type Source string

// Data sources, in fallback order.
const (
	SourceRemote   Source = "remote"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Cache persists raw response bodies between runs.
type Cache interface {
	Put(ctx context.Context, key string, body []byte, fetchedAt time.Time) error
	Get(ctx context.Context, key string) (store.Payload, bool, error)
}

// Client fetches portfolio data. Zero-value optional fields are allowed:
// a nil Cache disables caching, a nil Logger discards logs.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cache   Cache
	Logger  *slog.Logger
	Offline bool
	Now     func() time.Time
}

// New returns a client for baseURL with the default timeout.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
		Logger:  slog.Default(),
		Now:     time.Now,
	}
}

// Portfolio returns the portfolio from the API, the static data file, the
// cache or the built-in data, whichever answers first.
func (c *Client) Portfolio(ctx context.Context) (model.Portfolio, Source) {
	for _, path := range []string{"/api/portfolio", "/data/portfolio-data.json"} {
		if c.Offline {
			break
		}
		var p model.Portfolio
		body, err := c.getJSON(ctx, path, &p)
		if err == nil {
			c.remember(ctx, keyPortfolio, body)
			return p, SourceRemote
		}
		c.logger().Debug("portfolio fetch failed", "path", path, "error", err)
	}
	var p model.Portfolio
	if c.recall(ctx, keyPortfolio, &p) {
		return p, SourceCache
	}
	c.logger().Info("using built-in portfolio data")
	return FallbackPortfolio(), SourceFallback
}

// BlogPosts returns the blog listing, falling back to the cache and then to
// an empty list.
func (c *Client) BlogPosts(ctx context.Context) ([]model.BlogPost, Source) {
	var posts []model.BlogPost
	if !c.Offline {
		body, err := c.getJSON(ctx, "/api/blog", &posts)
		if err == nil {
			c.remember(ctx, keyBlog, body)
			return posts, SourceRemote
		}
		c.logger().Debug("blog fetch failed", "error", err)
	}
	if c.recall(ctx, keyBlog, &posts) {
		return posts, SourceCache
	}
	c.logger().Info("no blog posts available")
	return []model.BlogPost{}, SourceFallback
}

// BlogPost returns a single article. A missing or unreachable article yields nil.
func (c *Client) BlogPost(ctx context.Context, slug string) *model.BlogArticle {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	key := keyPostPref + slug
	var article model.BlogArticle
	if !c.Offline {
		body, err := c.getJSON(ctx, "/api/blog/"+url.PathEscape(slug), &article)
		if err == nil {
			c.remember(ctx, key, body)
			return &article
		}
		c.logger().Debug("blog post fetch failed", "slug", slug, "error", err)
	}
	if c.recall(ctx, key, &article) {
		return &article
	}
	c.logger().Info("blog post unavailable", "slug", slug)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return body, nil
}

func (c *Client) remember(ctx context.Context, key string, body []byte) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.Put(ctx, key, body, c.now()); err != nil {
		c.logger().Debug("cache write failed", "key", key, "error", err)
	}
}

func (c *Client) recall(ctx context.Context, key string, out any) bool {
	if c.Cache == nil {
		return false
	}
	payload, ok, err := c.Cache.Get(ctx, key)
	if err != nil {
		c.logger().Debug("cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload.Body, out); err != nil {
		c.logger().Debug("cached payload is invalid", "key", key, "error", err)
		return false
	}
	c.logger().Info("using cached data", "key", key, "fetchedAt", payload.FetchedAt)
	return true
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
