// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"io/fs"
	"slices"
)

// IgnoreErrorLoader decorates a loader, turning the given errors into an
// empty settings map. onIgnored, if not nil, is called with every swallowed
// error, so a caller can still report it.
// Other errors are returned as they are.
func IgnoreErrorLoader(loader Loader, onIgnored func(error), errs ...error) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		configMap, err := loader.Load()
		if err == nil {
			return configMap, nil
		}

		ignored := slices.ContainsFunc(errs, func(target error) bool {
			return errors.Is(err, target)
		})
		if !ignored {
			return nil, err
		}
		if onIgnored != nil {
			onIgnored(err)
		}

		return map[string]string{}, nil
	})
}

// OptionalFileLoader is a FileLoader for a file that may be missing,
// like a local overrides file. A missing file contributes no settings.
func OptionalFileLoader(filePath string, onIgnored func(error)) Loader {
	return IgnoreErrorLoader(FileLoader(filePath), onIgnored, fs.ErrNotExist)
}
