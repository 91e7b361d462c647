package main

import (
	"os"

	"github.com/pyropy/pagecache/core/browser"
	"github.com/pyropy/pagecache/lib/logger"
	"github.com/urfave/cli/v2"
)

var log, _ = logger.New("pagecache")

func main() {
	if err := run(os.Args); err != nil {
		log.Fatalw("startup", "ERROR", err)
	}
}

func run(args []string) error {
	cfg, err := browser.GetConfig()
	if err != nil {
		return err
	}

	app := &cli.App{
		Name:  "pagecache",
		Usage: "Browse pages through a bounded LRU page cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "store",
				Value: cfg.Store.Path,
				Usage: "Path of the origin page store",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Value: cfg.Cache.Capacity,
				Usage: "Number of pages kept in the cache",
			},
			&cli.StringFlag{
				Name:  "hasher",
				Value: cfg.Cache.Hasher,
				Usage: "Hash function of the cache index (fnv or xxhash)",
			},
			&cli.StringFlag{
				Name:  "rpc-url",
				Value: cfg.RPC.Addr,
				Usage: "Address the page cache rpc server listens on",
			},
		},
		Commands: []*cli.Command{
			seedCmd,
			visitCmd,
			serveCmd,
			historyCmd,
			benchCmd,
		},
	}

	return app.Run(args)
}
