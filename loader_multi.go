// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"fmt"
	"strings"

	"github.com/actforgood/xerr"
)

// KeyConflictError is an error returned by MultiLoader
// in case of a duplicate key.
// If key overwrite is allowed, this error will not be returned.
type KeyConflictError struct {
	key string // the duplicate key
}

// NewKeyConflictError instantiates a new KeyConflictError.
// The duplicate key must be provided.
func NewKeyConflictError(key string) KeyConflictError {
	return KeyConflictError{key: key}
}

// Error returns string representation of the KeyConflictError.
// It implements standard go error interface.
func (e KeyConflictError) Error() string {
	return fmt.Sprintf(`key "%s" already exists`, e.key)
}

// Key returns the duplicate key.
func (e KeyConflictError) Key() string {
	return e.key
}

// MultiLoader is a composite loader that merges configurations
// from multiple loaders into one flat store.
type MultiLoader struct {
	// loaders to load configuration from, in priority order (last wins).
	loaders []Loader
	// allowKeyOverwrite is a flag that indicates whether a duplicate key
	// is allowed to be overwritten.
	allowKeyOverwrite bool
}

// NewMultiLoader instantiates a new MultiLoader object that loads
// and merges configuration from multiple loaders.
// The first parameter is a flag indicating whether a key is allowed to be overwritten,
// if found more than once.
// If not, a KeyConflictError will be returned (keys are compared case insensitive).
// If yes, the order of loaders matters, meaning a later provided loader,
// will overwrite a previous provided loader's same found key. A typical setup is:
//
//	xsettings.NewMultiLoader(true, xsettings.FileLoader("app.ini"), xsettings.EnvLoader())
//
// so that ENV can override the file.
func NewMultiLoader(allowKeyOverwrite bool, loaders ...Loader) MultiLoader {
	return MultiLoader{
		loaders:           loaders,
		allowKeyOverwrite: allowKeyOverwrite,
	}
}

// Load returns a merged configuration key-value map of all encapsulated loaders,
// or an error if something bad happens along the process.
// All loaders' errors are reported, not only the first one.
func (loader MultiLoader) Load() (map[string]string, error) {
	var (
		configMap = make(map[string]string)
		unqKeys   = make(map[string]struct{})
		mErr      *xerr.MultiError
	)

	for _, l := range loader.loaders {
		loaded, err := l.Load()
		if err != nil {
			mErr = mErr.Add(err)

			continue
		}
		for key, value := range loaded {
			if !loader.allowKeyOverwrite {
				unqKey := strings.ToLower(key)
				if _, found := unqKeys[unqKey]; found {
					mErr = mErr.Add(NewKeyConflictError(key))

					continue
				}
				unqKeys[unqKey] = struct{}{}
			}

			configMap[key] = value
		}
	}

	if err := mErr.ErrOrNil(); err != nil {
		return nil, err
	}

	return configMap, nil
}
