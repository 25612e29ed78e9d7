package store

import (
	"os"
	"strings"

	"github.com/hamidzr/gweather/constant"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// historyRecord is the on-disk layout of the recent search list.
type historyRecord struct {
	Cities []string `json:"cities" yaml:"cities"`
}

// RecencyCache is a bounded most-recently-used list of keys persisted to a
// file. Keys are trimmed and unique; the front of the list is the newest.
//
// Operations never fail: unreadable state loads as empty and failed writes are
// logged while the in-memory list stays authoritative. A RecencyCache is not
// safe for concurrent use.
type RecencyCache struct {
	items    []string
	capacity int
	store    *FileStore[historyRecord]
}

// LoadRecencyCache restores the cache persisted at path, keeping at most
// capacity entries. A non-positive capacity uses the default history size.
func LoadRecencyCache(path string, capacity int) *RecencyCache {
	if capacity <= 0 {
		capacity = constant.DefaultHistorySize
	}
	fs, err := NewFileStore[historyRecord](path, "json")
	if err != nil {
		// json is always supported.
		panic(err)
	}
	c := &RecencyCache{
		items:    []string{},
		capacity: capacity,
		store:    fs,
	}

	record, err := fs.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", path).Warn("ignoring unreadable search history")
		}
		return c
	}
	c.items = normalize(record.Cities, capacity)
	return c
}

// normalize trims entries and drops blanks and repeats, then keeps the first
// capacity entries.
func normalize(keys []string, capacity int) []string {
	cleaned := lo.FilterMap(keys, func(k string, _ int) (string, bool) {
		k = strings.TrimSpace(k)
		return k, k != ""
	})
	cleaned = lo.Uniq(cleaned)
	if len(cleaned) > capacity {
		cleaned = cleaned[:capacity]
	}
	return cleaned
}

// Add moves key to the front of the list and persists the result.
// Keys that are empty after trimming are ignored.
func (c *RecencyCache) Add(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	items := append([]string{key}, lo.Without(c.items, key)...)
	if len(items) > c.capacity {
		items = items[:c.capacity]
	}
	c.items = items
	c.flush()
}

// List returns a copy of the entries, most recent first.
func (c *RecencyCache) List() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Clear drops every entry and persists the empty list.
func (c *RecencyCache) Clear() {
	c.items = []string{}
	c.flush()
}

func (c *RecencyCache) Len() int {
	return len(c.items)
}

func (c *RecencyCache) Capacity() int {
	return c.capacity
}

// Path is the file the cache is flushed to.
func (c *RecencyCache) Path() string {
	return c.store.Path()
}

func (c *RecencyCache) flush() {
	if err := c.store.Save(historyRecord{Cities: c.List()}); err != nil {
		logrus.WithError(err).WithField("path", c.store.Path()).Warn("failed to save search history")
	}
}
