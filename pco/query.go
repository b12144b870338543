// pco/query.go
package pco

import (
	"net/url"
	"time"
)

// StartsAtKey is the upstream time-window filter on event start times.
const StartsAtKey = "where[starts_at][gte]"

// Param is one inbound query pair forwarded verbatim to the upstream.
// Passthrough parameters keep their order and may repeat a key.
type Param struct {
	Key   string
	Value string
}

// Query builds an upstream query string. Passthrough pairs are appended
// first and take precedence over pagination parameters, which are applied
// with ensure semantics; operation filters that encode server policy are
// applied last with overwrite semantics.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// ApplyPassthrough appends every pair verbatim, preserving repeats.
func (q *Query) ApplyPassthrough(params []Param) {
	for _, p := range params {
		q.values.Add(p.Key, p.Value)
	}
}

// Ensure sets the parameter only when the key is not already present, so a
// caller-supplied value is never overridden.
func (q *Query) Ensure(key, value string) {
	if !q.values.Has(key) {
		q.values.Set(key, value)
	}
}

// Set overwrites the parameter unconditionally.
func (q *Query) Set(key, value string) {
	q.values.Set(key, value)
}

// Get returns the first value for key, or "" when absent.
func (q *Query) Get(key string) string {
	return q.values.Get(key)
}

// Has reports whether key is present.
func (q *Query) Has(key string) bool {
	return q.values.Has(key)
}

// Encode renders the query string.
func (q *Query) Encode() string {
	return q.values.Encode()
}

// UpcomingStartsAt renders the "upcoming" time-window anchor: the current
// UTC date pinned to 05:00:00Z rather than the literal instant, so the
// filter stays stable across a whole service day.
func UpcomingStartsAt(now time.Time) string {
	return now.UTC().Format("2006-01-02") + "T05:00:00Z"
}
