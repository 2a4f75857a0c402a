// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"os"
	"sort"
	"strings"
)

// Source provides raw setting values.
// It is the external configuration store the Settings read from.
type Source interface {
	// Lookup returns the raw value for a key and whether the key was found.
	Lookup(key string) (string, bool)
}

// The SourceFunc type is an adapter to allow the use of
// ordinary functions as Sources.
type SourceFunc func(key string) (string, bool)

// Lookup calls fn(key).
func (fn SourceFunc) Lookup(key string) (string, bool) {
	return fn(key)
}

// EnvSource returns a Source reading OS's ENV on every lookup.
func EnvSource() Source {
	return SourceFunc(os.LookupEnv)
}

// LoaderSource is a Source based on a Loader's key-value map.
// The map is loaded once, at instantiation.
type LoaderSource struct {
	// configMap the loaded key-value configuration map.
	configMap map[string]string
	// ignoreCaseSensitivity is a flag indicating whether keys' case sensitivity should be ignored.
	ignoreCaseSensitivity bool
}

// NewLoaderSource instantiates a new LoaderSource object.
// The first parameter is the loader used as a source of getting the key-value configuration map.
// The second parameter represents a list of optional functions to configure the object.
func NewLoaderSource(loader Loader, opts ...LoaderSourceOption) (*LoaderSource, error) {
	src := new(LoaderSource)

	// apply options, if any.
	for _, opt := range opts {
		opt(src)
	}

	configMap, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if src.ignoreCaseSensitivity {
		configMap = toUppercaseConfigMap(configMap)
	}
	src.configMap = configMap

	return src, nil
}

// Lookup returns the raw value for a key and whether the key was found.
func (src *LoaderSource) Lookup(key string) (string, bool) {
	if src.ignoreCaseSensitivity {
		key = strings.ToUpper(key)
	}
	value, found := src.configMap[key]

	return value, found
}

// Keys returns the loaded keys, sorted.
func (src *LoaderSource) Keys() []string {
	keys := make([]string, 0, len(src.configMap))
	for key := range src.configMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// toUppercaseConfigMap returns a map with all keys transformed to uppercase.
// If two keys differ only by case, one of them wins, unpredictably.
func toUppercaseConfigMap(configMap map[string]string) map[string]string {
	upper := make(map[string]string, len(configMap))
	for key, value := range configMap {
		upper[strings.ToUpper(key)] = value
	}

	return upper
}

// LoaderSourceOption defines optional function for configuring
// a LoaderSource object.
type LoaderSourceOption func(*LoaderSource)

// LoaderSourceWithIgnoreCaseSensitivity disables case sensitivity for keys.
//
// For example, if the configuration map contains a key "Page_Size", looking up
// "page_size" / "PAGE_SIZE" / etc. will return Page_Size's value.
func LoaderSourceWithIgnoreCaseSensitivity() LoaderSourceOption {
	return func(src *LoaderSource) {
		src.ignoreCaseSensitivity = true
	}
}
