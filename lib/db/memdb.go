// Package db offers the in memory key value store used by the local
// transport for payloads and progress counters
package db

import (
	"sync"

	"github.com/patrickmn/go-cache"
)

// MemDB is an internal key value store, thread safe
type MemDB struct {
	db  *cache.Cache
	mux *sync.Mutex
}

// NewMemDB returns an empty store
func NewMemDB() (memdb MemDB) {
	memdb.db = cache.New(cache.NoExpiration, 0)
	memdb.mux = &sync.Mutex{}
	return memdb
}

// Get gets the content for key
func (d MemDB) Get(key string) (val interface{}, found bool) {
	val, found = d.db.Get(key)
	return val, found
}

// GetInt64 gets the counter value for key, zero when absent
func (d MemDB) GetInt64(key string) int64 {
	val, found := d.db.Get(key)
	if !found {
		return 0
	}
	return val.(int64)
}

// Delete deletes the key from db
func (d MemDB) Delete(key string) {
	d.db.Delete(key)
}

// Set sets the key to val
func (d MemDB) Set(key string, val interface{}) {
	d.db.Set(key, val, cache.NoExpiration)
}

// IncrBy increments the key by val, if not present new value will be val
func (d MemDB) IncrBy(key string, val int64) {
	d.mux.Lock()
	prev, found := d.db.Get(key)
	var prevValue int64
	if found {
		prevValue = prev.(int64)
	}
	d.db.Set(key, prevValue+val, cache.NoExpiration)
	d.mux.Unlock()
}
