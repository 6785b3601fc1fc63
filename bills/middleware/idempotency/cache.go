package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

// Key identifies one idempotent request per endpoint path.
type Key struct {
	Resource string
	Key      string
}

// Entry is the recorded progress or result of an idempotent request.
type Entry struct {
	State     string          `json:"state"`
	BodyHash  string          `json:"body_hash"`
	Response  json.RawMessage `json:"response,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

var cluster = cache.NewCluster("bills-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Entries lives in the cache cluster rather than in process, keeping the
// service itself stateless between invocations.
var Entries = cache.NewStructKeyspace[Key, Entry](cluster, cache.KeyspaceConfig{
	KeyPattern:    "idempotency/:Resource/:Key",
	DefaultExpiry: cache.ExpireIn(24 * time.Hour),
})
