// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"fmt"
)

// ErrInvalidAlias is returned by AliasLoader for an Alias with no key
// or no former keys.
var ErrInvalidAlias = errors.New("invalid alias")

// Alias binds a setting's key to the keys it was formerly known as.
type Alias struct {
	// Key is the current key.
	Key string
	// Former are the old keys, in lookup order.
	Former []string
}

// AliasLoader decorates a loader so that settings renamed over time keep
// being found under their current key.
// When the current key has no value (absent or empty), it takes the value
// of the first former key that has one. Former keys are kept as they are.
func AliasLoader(loader Loader, aliases ...Alias) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		for _, alias := range aliases {
			if alias.Key == "" || len(alias.Former) == 0 {
				return nil, fmt.Errorf("%w: %+v", ErrInvalidAlias, alias)
			}
		}

		configMap, err := loader.Load()
		if err != nil {
			return nil, err
		}

		for _, alias := range aliases {
			if configMap[alias.Key] != "" {
				continue
			}
			for _, former := range alias.Former {
				if value := configMap[former]; value != "" {
					configMap[alias.Key] = value

					break
				}
			}
		}

		return configMap, nil
	})
}
