// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// Loader is responsible for loading a flat configuration
// key value map.
type Loader interface {
	// Load returns a configuration key value map or an error.
	//
	// The returned map is owned by the caller, it's safe to mutate it
	// (decorators rely on this to alter a decorated loader's result).
	Load() (map[string]string, error)
}

// The LoaderFunc type is an adapter to allow the use of
// ordinary functions as Loaders. If fn is a function
// with the appropriate signature, LoaderFunc(fn) is a
// Loader that calls fn.
type LoaderFunc func() (map[string]string, error)

// Load calls fn().
func (fn LoaderFunc) Load() (map[string]string, error) {
	return fn()
}
