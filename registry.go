// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"maps"
	"sort"
	"sync"
)

// Registry holds the default values and the required keys settings are resolved with.
// It is safe for concurrent use. Mutations happen under a write lock,
// so readers never observe a half applied Configure / discovery rebuild.
type Registry struct {
	// defaults maps a key to its default raw value.
	defaults map[string]string
	// required is the set of keys that must have a raw value.
	required map[string]struct{}
	// mu is a concurrency semaphore for accessing the maps above.
	mu sync.RWMutex
}

// NewRegistry instantiates a new, empty, Registry.
func NewRegistry() *Registry {
	return &Registry{
		defaults: make(map[string]string),
		required: make(map[string]struct{}),
	}
}

// SetDefault adds or overwrites the default raw value for a key.
func (reg *Registry) SetDefault(key, value string) {
	reg.mu.Lock()
	reg.defaults[key] = value
	reg.mu.Unlock()
}

// AddRequired marks given keys as required. It's idempotent.
func (reg *Registry) AddRequired(keys ...string) {
	reg.mu.Lock()
	for _, key := range keys {
		reg.required[key] = struct{}{}
	}
	reg.mu.Unlock()
}

// Configure applies defaults and required keys in bulk.
// If replace is true, each collection is cleared before applying provided entries,
// otherwise entries are merged: existing defaults get overwritten, required
// keys are added, none removed.
func (reg *Registry) Configure(defaults map[string]string, required []string, replace bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if replace {
		clear(reg.defaults)
		clear(reg.required)
	}
	for key, value := range defaults {
		reg.defaults[key] = value
	}
	for _, key := range required {
		reg.required[key] = struct{}{}
	}
}

// Clear empties both defaults and required keys.
func (reg *Registry) Clear() {
	reg.mu.Lock()
	clear(reg.defaults)
	clear(reg.required)
	reg.mu.Unlock()
}

// rebuild replaces both collections with given ones, in a single critical section.
func (reg *Registry) rebuild(defaults map[string]string, required map[string]struct{}) {
	reg.mu.Lock()
	reg.defaults = defaults
	reg.required = required
	reg.mu.Unlock()
}

// Default returns the default raw value for a key, if any.
func (reg *Registry) Default(key string) (string, bool) {
	reg.mu.RLock()
	value, found := reg.defaults[key]
	reg.mu.RUnlock()

	return value, found
}

// IsRequired returns true if the key is required.
func (reg *Registry) IsRequired(key string) bool {
	reg.mu.RLock()
	_, found := reg.required[key]
	reg.mu.RUnlock()

	return found
}

// Defaults returns a copy of the defaults.
func (reg *Registry) Defaults() map[string]string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return maps.Clone(reg.defaults)
}

// RequiredKeys returns the required keys, sorted.
func (reg *Registry) RequiredKeys() []string {
	reg.mu.RLock()
	keys := make([]string, 0, len(reg.required))
	for key := range reg.required {
		keys = append(keys, key)
	}
	reg.mu.RUnlock()

	sort.Strings(keys)

	return keys
}
