package main

import (
	"context"
	"net"
	"net/http"
	"net/rpc"
	"reflect"
	"testing"

	"github.com/pyropy/pagecache/core/browser"
	"github.com/pyropy/pagecache/core/model"
	"github.com/pyropy/pagecache/core/origin"
	"github.com/pyropy/pagecache/lib/hashtable"
	pagecacheRPC "github.com/pyropy/pagecache/rpc/pagecache"
)

func startTestServer(t *testing.T, capacity int) *pagecacheRPC.Client {
	t.Helper()
	ctx := context.Background()

	store, err := origin.NewPageStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, url := range []string{"a.com", "b.com", "c.com", "d.com", "e.com"} {
		if err := store.Put(ctx, model.NewPage(url, url+" contents")); err != nil {
			t.Fatalf("put %s: %v", url, err)
		}
	}

	server := rpc.NewServer()
	b := browser.NewBrowser(capacity, store, log, hashtable.WithHasher(hashtable.XXHash))
	if err := server.RegisterName(pagecacheRPC.ServiceName, NewPageCacheAPI(b)); err != nil {
		t.Fatalf("register: %v", err)
	}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	go http.Serve(l, server)

	c, err := pagecacheRPC.Dial(l.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	return c
}

func TestVisitOverRPC(t *testing.T) {
	c := startTestServer(t, 4)

	for _, url := range []string{"a.com", "b.com", "c.com", "d.com", "d.com"} {
		reply, err := c.Visit(url)
		if err != nil {
			t.Fatalf("visit %s: %v", url, err)
		}
		if reply.Contents != url+" contents" {
			t.Fatalf("visit %s returned %q", url, reply.Contents)
		}
	}

	reply, err := c.Visit("e.com")
	if err != nil {
		t.Fatalf("visit e.com: %v", err)
	}
	if want := []string{"e.com", "d.com", "c.com", "b.com"}; !reflect.DeepEqual(reply.Pages, want) {
		t.Fatalf("pages %v, want %v", reply.Pages, want)
	}

	history, err := c.History(2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if want := []string{"e.com", "d.com"}; !reflect.DeepEqual(history.Pages, want) {
		t.Fatalf("history %v, want %v", history.Pages, want)
	}
}

func TestVisitUnknownPageOverRPC(t *testing.T) {
	c := startTestServer(t, 2)

	if _, err := c.Visit("nowhere.com"); err == nil {
		t.Fatalf("expected visit of unknown page to fail")
	}

	history, err := c.History(0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Pages) != 0 {
		t.Fatalf("expected empty history, got %v", history.Pages)
	}
}

func TestBench(t *testing.T) {
	if err := bench(3, hashtable.WithHasher(hashtable.Hash)); err != nil {
		t.Fatalf("bench: %v", err)
	}
}
