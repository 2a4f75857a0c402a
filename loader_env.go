// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from OS's ENV.
// If a prefix is given, only variables starting with it are loaded,
// and the prefix is stripped from the resulting keys.
func EnvLoader(prefix ...string) Loader {
	var keyPrefix string
	if len(prefix) > 0 {
		keyPrefix = prefix[0]
	}

	return LoaderFunc(func() (map[string]string, error) {
		envs := os.Environ()

		configMap := make(map[string]string, len(envs))
		for _, env := range envs {
			key, value, found := strings.Cut(env, "=")
			if !found {
				continue
			}
			if keyPrefix != "" {
				if !strings.HasPrefix(key, keyPrefix) {
					continue
				}
				key = key[len(keyPrefix):]
			}
			configMap[key] = value
		}

		return configMap, nil
	})
}
