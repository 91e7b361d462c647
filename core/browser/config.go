package browser

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/pyropy/pagecache/lib/hashtable"
)

type Config struct {
	Cache struct {
		Capacity int    `envconfig:"PAGECACHE_CAPACITY" default:"4"`
		Hasher   string `envconfig:"PAGECACHE_HASHER" default:"fnv"`
	}
	Store struct {
		Path string `envconfig:"PAGECACHE_STORE_PATH" default:"./data"`
	}
	RPC struct {
		Addr string `envconfig:"PAGECACHE_RPC_ADDR" default:":1234"`
	}
}

func GetConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// HashOption returns the hash table option for the configured hasher.
func (c *Config) HashOption() (hashtable.Option, error) {
	h, ok := hashtable.HasherByName(c.Cache.Hasher)
	if !ok {
		return nil, errors.Errorf("unknown hasher %q", c.Cache.Hasher)
	}

	return hashtable.WithHasher(h), nil
}
