// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFileLoader loads YAML configuration from a file.
// The location of YAML content based file is given as parameter.
// Nested mappings are flattened, see [NestedKeySeparator].
func YAMLFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return YAMLReaderLoader(f).Load()
	})
}

// YAMLReaderLoader loads YAML configuration from an [io.Reader].
func YAMLReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		rewind(reader)
		var document map[string]any
		dec := yaml.NewDecoder(reader)
		if err := dec.Decode(&document); err != nil {
			return nil, err
		}

		return flattenConfigMap(document)
	})
}
