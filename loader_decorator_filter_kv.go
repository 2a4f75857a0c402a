// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"maps"
	"slices"
	"strings"
)

// KVMatcher reports whether a setting, given by its key and raw value,
// matches some criteria.
type KVMatcher func(key, value string) bool

// FilterKV decides whether a setting is kept by FilterKVLoader.
// Build one with Allow or Deny.
type FilterKV struct {
	match KVMatcher
	deny  bool
}

// Allow keeps the settings matching given criteria.
// Once a FilterKVLoader has an Allow filter, a setting that matches
// none of its Allow filters is dropped.
func Allow(match KVMatcher) FilterKV {
	return FilterKV{match: match}
}

// Deny drops the settings matching given criteria.
// Deny filters win over Allow filters.
func Deny(match KVMatcher) FilterKV {
	return FilterKV{match: match, deny: true}
}

// FilterKVLoader decorates a loader, keeping only the settings that
// pass the given filters.
//
// Example, keep application's settings, except the empty ones:
//
//	loader := xsettings.FilterKVLoader(
//		xsettings.EnvLoader(),
//		xsettings.Allow(xsettings.KeyWithPrefix("APP_")),
//		xsettings.Deny(xsettings.EmptyValue),
//	)
func FilterKVLoader(loader Loader, filters ...FilterKV) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		configMap, err := loader.Load()
		if err != nil {
			return nil, err
		}

		maps.DeleteFunc(configMap, func(key, value string) bool {
			return !passes(filters, key, value)
		})

		return configMap, nil
	})
}

func passes(filters []FilterKV, key, value string) bool {
	var hasAllow, allowed bool
	for _, filter := range filters {
		matched := filter.match(key, value)
		if filter.deny {
			if matched {
				return false
			}

			continue
		}
		hasAllow = true
		allowed = allowed || matched
	}

	return allowed || !hasAllow
}

// KeyWithPrefix matches the keys starting with given prefix.
func KeyWithPrefix(prefix string) KVMatcher {
	return func(key, _ string) bool {
		return strings.HasPrefix(key, prefix)
	}
}

// KeyWithSuffix matches the keys ending with given suffix.
func KeyWithSuffix(suffix string) KVMatcher {
	return func(key, _ string) bool {
		return strings.HasSuffix(key, suffix)
	}
}

// ExactKeys matches the given keys.
func ExactKeys(keys ...string) KVMatcher {
	return func(key, _ string) bool {
		return slices.Contains(keys, key)
	}
}

// EmptyValue matches the settings with an empty value,
// the ones Settings treats as absent.
func EmptyValue(_, value string) bool {
	return value == ""
}
