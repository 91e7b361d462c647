package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/pyropy/pagecache/lib/hashtable"
	"github.com/urfave/cli/v2"
)

const benchBatchSize = 10000

var benchCmd = &cli.Command{
	Name:  "bench",
	Usage: "Time batches of hash table puts and gets as the table grows",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "iterations",
			Value: 100,
			Usage: "Number of batches",
		},
	},
	Action: func(ctx *cli.Context) error {
		opt, err := hashOption(ctx)
		if err != nil {
			return err
		}

		return bench(ctx.Int("iterations"), opt)
	},
}

// bench fills a table with batches of random keys, timing each batch. With
// working resizes the per-batch time does not grow with the table.
func bench(iterations int, opts ...hashtable.Option) error {
	table := hashtable.New[string](opts...)

	for iteration := 0; iteration < iterations; iteration++ {
		begin := time.Now()

		rnd := rand.New(rand.NewSource(int64(iteration)))
		for i := 0; i < benchBatchSize; i++ {
			key := strconv.Itoa(rnd.Intn(100000001))
			table.Put(key, key)
		}

		rnd = rand.New(rand.NewSource(int64(iteration)))
		for i := 0; i < benchBatchSize; i++ {
			table.Get(strconv.Itoa(rnd.Intn(100000001)))
		}

		log.Infow("bench", "iteration", iteration, "elapsed", time.Since(begin),
			"size", table.Size(), "buckets", table.BucketCount())
	}

	for iteration := 0; iteration < iterations; iteration++ {
		rnd := rand.New(rand.NewSource(int64(iteration)))
		for i := 0; i < benchBatchSize; i++ {
			table.Delete(strconv.Itoa(rnd.Intn(100000001)))
		}
	}

	if table.Size() != 0 {
		return fmt.Errorf("expected empty table after deletes, %d items left", table.Size())
	}

	return nil
}
