package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/rpc"
	"os"
	"os/signal"
	"syscall"

	"github.com/pyropy/pagecache/core/browser"
	"github.com/pyropy/pagecache/core/origin"
	"github.com/pyropy/pagecache/lib/hashtable"
	pagecacheRPC "github.com/pyropy/pagecache/rpc/pagecache"
	"github.com/urfave/cli/v2"
)

func hashOption(ctx *cli.Context) (hashtable.Option, error) {
	var cfg browser.Config
	cfg.Cache.Hasher = ctx.String("hasher")

	return cfg.HashOption()
}

// openBrowser opens the origin store and builds a browser on top of it.
// The caller closes the returned store.
func openBrowser(ctx *cli.Context) (*browser.Browser, *origin.PageStore, error) {
	opt, err := hashOption(ctx)
	if err != nil {
		return nil, nil, err
	}

	capacity := ctx.Int("capacity")
	if capacity < 1 {
		return nil, nil, fmt.Errorf("capacity must be at least 1, got %d", capacity)
	}

	store, err := origin.NewPageStore(ctx.String("store"))
	if err != nil {
		return nil, nil, err
	}

	return browser.NewBrowser(capacity, store, log, opt), store, nil
}

var seedCmd = &cli.Command{
	Name:  "seed",
	Usage: "Load pages into the origin store",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Required: true,
			Usage:    "Path to a file of \"<url> <contents>\" lines",
		},
	},
	Action: func(ctx *cli.Context) error {
		f, err := os.Open(ctx.String("file"))
		if err != nil {
			return err
		}
		defer f.Close()

		store, err := origin.NewPageStore(ctx.String("store"))
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.LoadPages(context.Background(), f)
		if err != nil {
			return err
		}

		log.Infow("seed", "status", "pages stored", "count", n, "store", ctx.String("store"))
		return nil
	},
}

var visitCmd = &cli.Command{
	Name:      "visit",
	Usage:     "Visit pages in order and print the cache contents",
	ArgsUsage: "URL...",
	Action: func(ctx *cli.Context) error {
		b, store, err := openBrowser(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		cctx := context.Background()
		for _, url := range ctx.Args().Slice() {
			contents, err := b.Visit(cctx, url)
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", url, contents)
		}

		fmt.Println(b.History())
		return nil
	},
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve the page cache over rpc",
	Action: func(ctx *cli.Context) error {
		b, store, err := openBrowser(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		server := rpc.NewServer()
		if err := server.RegisterName(pagecacheRPC.ServiceName, NewPageCacheAPI(b)); err != nil {
			return err
		}

		l, err := net.Listen("tcp", ctx.String("rpc-url"))
		if err != nil {
			log.Infow("startup", "error", "net listen failed")
			return err
		}

		log.Infow("startup", "status", "page cache rpc server started", "address", l.Addr().String(), "session", b.ID)
		defer log.Infow("shutdown", "status", "page cache rpc server stopped", "address", l.Addr().String())
		go http.Serve(l, server)

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		<-shutdown
		log.Infow("shutdown", "status", "page cache rpc server stopping", "address", l.Addr().String())

		return l.Close()
	},
}

var historyCmd = &cli.Command{
	Name:  "history",
	Usage: "Print the cached pages of a running server",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Print at most this many pages",
		},
	},
	Action: func(ctx *cli.Context) error {
		c, err := pagecacheRPC.Dial(ctx.String("rpc-url"))
		if err != nil {
			return err
		}
		defer c.Close()

		reply, err := c.History(ctx.Int("limit"))
		if err != nil {
			return err
		}

		fmt.Println(reply.SessionID)
		for _, url := range reply.Pages {
			fmt.Println(url)
		}

		return nil
	},
}
