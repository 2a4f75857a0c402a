// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"encoding/json"
	"io"
	"os"
)

// JSONFileLoader loads JSON configuration from a file.
// The location of JSON content based file is given as parameter.
// Nested objects are flattened, see [NestedKeySeparator].
func JSONFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return JSONReaderLoader(f).Load()
	})
}

// JSONReaderLoader loads JSON configuration from an [io.Reader].
func JSONReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		rewind(reader)
		var document map[string]any
		dec := json.NewDecoder(reader)
		if err := dec.Decode(&document); err != nil {
			return nil, err
		}

		return flattenConfigMap(document)
	})
}
