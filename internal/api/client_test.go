package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/verte-zerg/folio/internal/logger"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/store"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	c := New(baseURL)
	c.Cache = st
	c.Logger = logger.Discard()
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode: %v", err)
	}
}

func TestPortfolioFromAPI(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/portfolio", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, model.Portfolio{Profile: model.Profile{Name: "Remote"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	p, src := c.Portfolio(context.Background())
	if src != SourceRemote || p.Profile.Name != "Remote" {
		t.Fatalf("expected remote portfolio, got %s %q", src, p.Profile.Name)
	}
}

func TestPortfolioFallsBackToDataFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/portfolio", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/data/portfolio-data.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, model.Portfolio{Profile: model.Profile{Name: "Static"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	p, src := c.Portfolio(context.Background())
	if src != SourceRemote || p.Profile.Name != "Static" {
		t.Fatalf("expected data file portfolio, got %s %q", src, p.Profile.Name)
	}
}

func TestPortfolioUsesCacheThenFallback(t *testing.T) {
	var up atomic.Bool
	up.Store(true)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/portfolio", func(w http.ResponseWriter, _ *http.Request) {
		if !up.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, model.Portfolio{Profile: model.Profile{Name: "Cached"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()
	if _, src := c.Portfolio(ctx); src != SourceRemote {
		t.Fatalf("expected remote on first fetch, got %s", src)
	}

	up.Store(false)
	p, src := c.Portfolio(ctx)
	if src != SourceCache || p.Profile.Name != "Cached" {
		t.Fatalf("expected cached portfolio, got %s %q", src, p.Profile.Name)
	}

	c.Cache = nil
	p, src = c.Portfolio(ctx)
	if src != SourceFallback {
		t.Fatalf("expected fallback, got %s", src)
	}
	if p.Profile.Name != FallbackPortfolio().Profile.Name {
		t.Fatalf("unexpected fallback profile: %q", p.Profile.Name)
	}
}

func TestOfflineSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(t, w, []model.BlogPost{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.Offline = true
	ctx := context.Background()
	if _, src := c.Portfolio(ctx); src != SourceFallback {
		t.Fatalf("expected fallback portfolio offline, got %s", src)
	}
	posts, src := c.BlogPosts(ctx)
	if src != SourceFallback || len(posts) != 0 {
		t.Fatalf("expected empty fallback blog, got %s %d", src, len(posts))
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no requests offline, got %d", hits.Load())
	}
}

func TestBlogPosts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/blog", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []model.BlogPost{{Slug: "hello", Title: "Hello"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	posts, src := c.BlogPosts(context.Background())
	if src != SourceRemote || len(posts) != 1 || posts[0].Slug != "hello" {
		t.Fatalf("unexpected posts: %s %+v", src, posts)
	}
}

func TestBlogPost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/blog/hello-world", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, model.BlogArticle{Title: "Hello", Content: "Body"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()
	article := c.BlogPost(ctx, "hello-world")
	if article == nil || article.Content != "Body" {
		t.Fatalf("unexpected article: %+v", article)
	}
	if c.BlogPost(ctx, "missing") != nil {
		t.Fatalf("expected nil for missing article")
	}
	if c.BlogPost(ctx, "  ") != nil {
		t.Fatalf("expected nil for empty slug")
	}
}

func TestFallbackPortfolio(t *testing.T) {
	p := FallbackPortfolio()
	if p.Profile.Name == "" || len(p.Works) == 0 || len(p.Skills.Languages) == 0 {
		t.Fatalf("expected populated fallback data: %+v", p.Profile)
	}
	if len(p.Terminal.MOTD) == 0 {
		t.Fatalf("expected motd in fallback data")
	}
}
