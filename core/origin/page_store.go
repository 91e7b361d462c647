// Package origin stores the pages a browser fetches on a cache miss.
package origin

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ds "github.com/ipfs/go-datastore"
	dsq "github.com/ipfs/go-datastore/query"
	dslvl "github.com/ipfs/go-ds-leveldb"
	"github.com/pkg/errors"
	"github.com/pyropy/pagecache/core/model"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrChecksumMismatch = errors.New("page checksum mismatch")
)

type PageStore struct {
	Pages *dslvl.Datastore
}

func NewPageStore(dsPath string) (*PageStore, error) {
	p := fmt.Sprintf("%s/pages", dsPath)
	store, err := dslvl.NewDatastore(p, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open page store at %s", p)
	}

	return &PageStore{
		Pages: store,
	}, nil
}

// pageKey encodes url so that slashes and dots in it are not interpreted
// as datastore key namespaces.
func pageKey(url model.URL) ds.Key {
	return ds.NewKey(base64.RawURLEncoding.EncodeToString([]byte(url)))
}

func (s *PageStore) Get(ctx context.Context, url model.URL) (*model.Page, error) {
	b, err := s.Pages.Get(ctx, pageKey(url))
	if errors.Is(err, ds.ErrNotFound) {
		return nil, errors.Wrapf(ErrPageNotFound, "get %s", url)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}

	var page model.Page
	err = json.Unmarshal(b, &page)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", url)
	}

	if page.IsCorrupted() {
		return nil, errors.Wrapf(ErrChecksumMismatch, "get %s", url)
	}

	return &page, nil
}

func (s *PageStore) Has(ctx context.Context, url model.URL) (bool, error) {
	return s.Pages.Has(ctx, pageKey(url))
}

func (s *PageStore) Put(ctx context.Context, page model.Page) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}

	return s.Pages.Put(ctx, pageKey(page.URL), b)
}

func (s *PageStore) All(ctx context.Context) ([]*model.Page, error) {
	q := dsq.Query{}
	pages := make([]*model.Page, 0)

	res, err := s.Pages.Query(ctx, q)
	if err != nil {
		return pages, err
	}
	defer res.Close()

	for {
		r, hasNext := res.NextSync()
		if !hasNext {
			break
		}
		if r.Error != nil {
			return pages, r.Error
		}

		var page model.Page
		err = json.Unmarshal(r.Value, &page)
		if err != nil {
			return pages, err
		}
		pages = append(pages, &page)
	}

	return pages, nil
}

// LoadPages reads "<url> <contents>" lines from r and stores each one as a
// page. Blank lines are skipped; a line with only a URL stores empty
// contents. It returns the number of pages stored.
func (s *PageStore) LoadPages(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		url, contents := text, ""
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			url, contents = text[:i], strings.TrimSpace(text[i+1:])
		}

		if err := s.Put(ctx, model.NewPage(url, contents)); err != nil {
			return n, errors.Wrapf(err, "line %d", line)
		}
		n++
	}

	return n, scanner.Err()
}

func (s *PageStore) Close() error {
	return s.Pages.Close()
}
