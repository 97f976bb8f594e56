package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "cache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestPutGet(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, "portfolio"); err != nil || ok {
		t.Fatalf("expected cache miss, got ok=%v err=%v", ok, err)
	}

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if err := st.Put(ctx, "portfolio", []byte(`{"a":1}`), at); err != nil {
		t.Fatalf("put: %v", err)
	}
	p, ok, err := st.Get(ctx, "portfolio")
	if err != nil || !ok {
		t.Fatalf("expected cache hit, got ok=%v err=%v", ok, err)
	}
	if string(p.Body) != `{"a":1}` || !p.FetchedAt.Equal(at) {
		t.Fatalf("unexpected payload: %+v", p)
	}

	later := at.Add(time.Hour)
	if err := st.Put(ctx, "portfolio", []byte(`{"a":2}`), later); err != nil {
		t.Fatalf("put replace: %v", err)
	}
	p, _, err = st.Get(ctx, "portfolio")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(p.Body) != `{"a":2}` || !p.FetchedAt.Equal(later) {
		t.Fatalf("expected replaced payload, got %+v", p)
	}
}

func TestPurge(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	for _, key := range []string{"portfolio", "blog"} {
		if err := st.Put(ctx, key, []byte("[]"), now); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	n, err := st.Purge(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", n)
	}
	if _, ok, _ := st.Get(ctx, "blog"); ok {
		t.Fatalf("expected cache to be empty after purge")
	}
}
