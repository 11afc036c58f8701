package cache

import (
	"encoding/json"
	"time"
)

// Entry is one cached value with its write time and lifetime. Expiry is a
// pure function of the entry and a clock so it can be tested without Redis.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	WrittenAt time.Time       `json:"written_at"`
	TTL       time.Duration   `json:"ttl"`
}

// IsExpired reports whether the entry is past its lifetime at the given
// instant. An entry read exactly at WrittenAt+TTL is still valid.
func IsExpired(e Entry, now time.Time) bool {
	return now.Sub(e.WrittenAt) > e.TTL
}
