package flatstore

import (
	"strconv"
	"sync"

	"github.com/morvin2701/pixelwalls/internal/common"
)

// KV is the subset of FileStore used by Counters.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Counters keeps small per-user tallies (downloads, saves) in a flat store.
type Counters struct {
	store KV
	mu    sync.Mutex
}

func NewCounters(store KV) *Counters {
	return &Counters{store: store}
}

// CounterKey scopes name to userID.
func CounterKey(userID, name string) string {
	return common.CounterKeyPrefix + "_" + name + "_" + userID
}

// Get returns the counter value; absent or unparsable values read as 0.
func (c *Counters) Get(userID, name string) int {
	v, ok, err := c.store.Get(CounterKey(userID, name))
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Increment adds one and returns the new value.
func (c *Counters) Increment(userID, name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.Get(userID, name) + 1
	if err := c.store.Set(CounterKey(userID, name), strconv.Itoa(n)); err != nil {
		return 0, err
	}
	return n, nil
}
