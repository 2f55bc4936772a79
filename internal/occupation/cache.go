package occupation

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const cacheKeyPrefix = "occupation:"

// Cache keeps live statistics answers between runs.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenCache opens or creates a badger cache in dir.
func OpenCache(dir string, ttl time.Duration) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open stats cache: %w", err)
	}
	return NewCache(db, ttl), nil
}

// NewCache wraps an open database. Entries never expire when ttl is zero.
func NewCache(db *badger.DB, ttl time.Duration) *Cache {
	return &Cache{db: db, ttl: ttl}
}

// Get returns the cached stats of an occupation code.
func (c *Cache) Get(code string) (Stats, bool, error) {
	var stats Stats

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cacheKeyPrefix + code))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Stats{}, false, nil
	}
	if err != nil {
		return Stats{}, false, fmt.Errorf("get cached stats: %w", err)
	}

	return stats, true, nil
}

// Put stores stats under their occupation code.
func (c *Cache) Put(stats Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(cacheKeyPrefix+stats.Code), data)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set stats: %w", err)
		}
		return nil
	})
}

func (c *Cache) Close() error {
	return c.db.Close()
}
