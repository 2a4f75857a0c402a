// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOMLFileLoader loads TOML configuration from a file.
// The location of TOML content based file is given as parameter.
// Tables are flattened, see [NestedKeySeparator].
func TOMLFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return TOMLReaderLoader(f).Load()
	})
}

// TOMLReaderLoader loads TOML configuration from an [io.Reader].
func TOMLReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		rewind(reader)
		var document map[string]any
		dec := toml.NewDecoder(reader)
		if err := dec.Decode(&document); err != nil {
			return nil, err
		}

		return flattenConfigMap(document)
	})
}
