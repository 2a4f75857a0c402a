// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import "maps"

// PlainLoader is an explicit go configuration map retriever.
// It simply returns a copy of the given config map parameter.
//
// It can be used for example:
//
// - as a test double for a real store.
//
// - in a [MultiLoader] (with allowing keys overwrite) as the first loader
// in order to provide hardcoded values other loaders may override.
func PlainLoader(configMap map[string]string) Loader {
	// preserve state at current time, later changes on configMap are not seen.
	configMapCopy := maps.Clone(configMap)
	if configMapCopy == nil {
		configMapCopy = map[string]string{}
	}

	return LoaderFunc(func() (map[string]string, error) {
		return maps.Clone(configMapCopy), nil
	})
}
