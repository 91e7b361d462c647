package browser

import (
	"context"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/pyropy/pagecache/core/model"
	"go.uber.org/zap"
)

var errMissing = errors.New("missing")

type fakeOrigin struct {
	pages map[string]string
	gets  []string
}

func (o *fakeOrigin) Get(_ context.Context, url model.URL) (*model.Page, error) {
	o.gets = append(o.gets, url)

	contents, ok := o.pages[url]
	if !ok {
		return nil, errMissing
	}

	page := model.NewPage(url, contents)
	return &page, nil
}

func newTestBrowser(capacity int) (*Browser, *fakeOrigin) {
	origin := &fakeOrigin{pages: map[string]string{
		"a.com": "AAA",
		"b.com": "BBB",
		"c.com": "CCC",
	}}

	return NewBrowser(capacity, origin, zap.NewNop().Sugar()), origin
}

func TestVisitFetchesOnMissOnly(t *testing.T) {
	ctx := context.Background()
	b, origin := newTestBrowser(2)

	for _, url := range []string{"a.com", "b.com", "a.com"} {
		if _, err := b.Visit(ctx, url); err != nil {
			t.Fatalf("visit %s: %v", url, err)
		}
	}

	if want := []string{"a.com", "b.com"}; !reflect.DeepEqual(origin.gets, want) {
		t.Fatalf("origin fetched %v, want %v", origin.gets, want)
	}
	if want := []string{"a.com", "b.com"}; !reflect.DeepEqual(b.History(), want) {
		t.Fatalf("history %v, want %v", b.History(), want)
	}
}

func TestVisitEvicts(t *testing.T) {
	ctx := context.Background()
	b, origin := newTestBrowser(2)

	for _, url := range []string{"a.com", "b.com", "c.com", "a.com"} {
		contents, err := b.Visit(ctx, url)
		if err != nil {
			t.Fatalf("visit %s: %v", url, err)
		}
		if contents != origin.pages[url] {
			t.Fatalf("visit %s returned %q", url, contents)
		}
	}

	if want := []string{"a.com", "c.com"}; !reflect.DeepEqual(b.History(), want) {
		t.Fatalf("history %v, want %v", b.History(), want)
	}
	if len(origin.gets) != 4 {
		t.Fatalf("expected evicted a.com to be fetched again, fetches %v", origin.gets)
	}
}

func TestVisitMissingPage(t *testing.T) {
	b, _ := newTestBrowser(2)

	_, err := b.Visit(context.Background(), "nowhere.com")
	if errors.Cause(err) != errMissing {
		t.Fatalf("expected origin error, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected failed visit not to be cached")
	}
}

func TestGetConfig(t *testing.T) {
	t.Setenv("PAGECACHE_CAPACITY", "8")
	t.Setenv("PAGECACHE_HASHER", "xxhash")

	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Cache.Capacity != 8 {
		t.Fatalf("expected capacity 8, got %d", cfg.Cache.Capacity)
	}
	if cfg.Store.Path != "./data" || cfg.RPC.Addr != ":1234" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := cfg.HashOption(); err != nil {
		t.Fatalf("hash option: %v", err)
	}

	cfg.Cache.Hasher = "crc"
	if _, err := cfg.HashOption(); err == nil {
		t.Fatalf("expected unknown hasher to fail")
	}
}
