package main

import (
	"context"

	"github.com/pyropy/pagecache/core/browser"
	rpc "github.com/pyropy/pagecache/rpc/pagecache"
)

type PageCacheAPI struct {
	browser *browser.Browser
}

func NewPageCacheAPI(b *browser.Browser) *PageCacheAPI {
	return &PageCacheAPI{
		browser: b,
	}
}

func (a *PageCacheAPI) Visit(args *rpc.VisitArgs, reply *rpc.VisitReply) error {
	log.Infow("rpc", "event", "Visit", "args", args)
	contents, err := a.browser.Visit(context.Background(), args.URL)
	if err != nil {
		log.Errorw("rpc", "event", "Visit", "url", args.URL, "error", err)
		return err
	}

	reply.Contents = contents
	reply.Pages = a.browser.History()
	return nil
}

func (a *PageCacheAPI) History(args *rpc.HistoryArgs, reply *rpc.HistoryReply) error {
	log.Infow("rpc", "event", "History", "args", args)
	pages := a.browser.History()
	if args.Limit > 0 && len(pages) > args.Limit {
		pages = pages[:args.Limit]
	}

	reply.SessionID = a.browser.ID
	reply.Pages = pages
	return nil
}
