package db

import (
	"testing"
)

func TestMemDB(t *testing.T) {
	memdb := NewMemDB()
	if _, found := memdb.Get("missing"); found {
		t.Errorf("Key should not exist")
	}
	if memdb.GetInt64("missing") != 0 {
		t.Errorf("Missing counter should be zero")
	}
	memdb.Set("key", "value")
	val, found := memdb.Get("key")
	if !found || val.(string) != "value" {
		t.Errorf("Invalid result: %v", val)
	}
	memdb.Delete("key")
	if _, found := memdb.Get("key"); found {
		t.Errorf("Key should be deleted")
	}
	memdb.IncrBy("counter", 2)
	memdb.IncrBy("counter", 3)
	if memdb.GetInt64("counter") != 5 {
		t.Errorf("Invalid counter: %d", memdb.GetInt64("counter"))
	}
	memdb.Set("counter", int64(10))
	if memdb.GetInt64("counter") != 10 {
		t.Errorf("Invalid counter: %d", memdb.GetInt64("counter"))
	}
}
