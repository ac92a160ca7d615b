package domain

import (
	"sort"
	"strings"
)

// CategoryRegistry maps small integer keys to work-mode names. It is a
// read-only snapshot loaded once per session; the core never mutates it.
type CategoryRegistry map[int]string

// Contains reports whether the registry has the given category id.
func (r CategoryRegistry) Contains(id int) bool {
	_, ok := r[id]
	return ok
}

// Name returns the display name for a category id, or "" if unknown.
func (r CategoryRegistry) Name(id int) string {
	return r[id]
}

// Keys returns the category ids in ascending order.
func (r CategoryRegistry) Keys() []int {
	keys := make([]int, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// FindByName returns the id whose name matches (case-insensitive), if any.
func (r CategoryRegistry) FindByName(name string) (int, bool) {
	for id, n := range r {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return 0, false
}

// AccountRegistry maps single-character keys to billing/task identifiers.
// Keys are stored lowercase; lookups are case-insensitive.
type AccountRegistry map[string]string

// NormalizeAccountKey lowercases an account key for registry lookups.
func NormalizeAccountKey(key string) string {
	return strings.ToLower(key)
}

// Contains reports whether the registry has the given account key.
func (r AccountRegistry) Contains(key string) bool {
	_, ok := r[NormalizeAccountKey(key)]
	return ok
}

// Name returns the display name for an account key, or "" if unknown.
func (r AccountRegistry) Name(key string) string {
	return r[NormalizeAccountKey(key)]
}

// Keys returns the account keys in ascending order.
func (r AccountRegistry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
