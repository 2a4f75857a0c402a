// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"sync"
	"sync/atomic"
)

// MockSource is a mock for xsettings.Source contract, to be used in UT.
type MockSource struct {
	configMap      map[string]string
	lookupCallsCnt uint32
	lookupCallback func(key string)
	mu             *sync.RWMutex
}

// NewMockSource instantiates new mocked Source with given key-values.
// Make sure you pass an even number of elements.
// Usage example:
//
//	mock := xsettings.NewMockSource(
//		"IMAGE_PATH", "/srv/images",
//		"PAGE_SIZE", "25",
//	)
func NewMockSource(kv ...string) *MockSource {
	mock := &MockSource{
		configMap: make(map[string]string),
		mu:        new(sync.RWMutex),
	}
	mock.SetKeyValues(kv...)

	return mock
}

// Lookup mock logic.
func (mock *MockSource) Lookup(key string) (string, bool) {
	atomic.AddUint32(&mock.lookupCallsCnt, 1)
	if mock.lookupCallback != nil {
		mock.lookupCallback(key)
	}

	mock.mu.RLock()
	value, found := mock.configMap[key]
	mock.mu.RUnlock()

	return value, found
}

// SetKeyValues sets/resets given key-values.
// Make sure you pass an even number of elements, a last odd element is skipped.
func (mock *MockSource) SetKeyValues(kv ...string) {
	kvLen := len(kv)
	if kvLen%2 == 1 {
		kvLen-- // skip last element
	}
	mock.mu.Lock()
	for i := 0; i < kvLen; i += 2 {
		mock.configMap[kv[i]] = kv[i+1]
	}
	mock.mu.Unlock()
}

// Unset removes given keys.
func (mock *MockSource) Unset(keys ...string) {
	mock.mu.Lock()
	for _, key := range keys {
		delete(mock.configMap, key)
	}
	mock.mu.Unlock()
}

// SetLookupCallback sets the given callback to be executed inside Lookup() method.
// You can inject yourself to make assertions upon passed parameter this way.
func (mock *MockSource) SetLookupCallback(callback func(key string)) {
	mock.lookupCallback = callback
}

// LookupCallsCount returns the no. of times Lookup() method was called.
func (mock *MockSource) LookupCallsCount() int {
	return int(atomic.LoadUint32(&mock.lookupCallsCnt))
}
