// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"io"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFileLoader loads .env configuration from a file.
// The location of .env content based file is given as parameter.
func DotEnvFileLoader(filePath string) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return DotEnvReaderLoader(f).Load()
	})
}

// DotEnvReaderLoader loads .env configuration from an [io.Reader].
func DotEnvReaderLoader(reader io.Reader) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		rewind(reader)

		return godotenv.Parse(reader)
	})
}

// rewind moves a seekable reader to its beginning, so the same reader
// can be loaded more than once.
func rewind(reader io.Reader) {
	if seekReader, ok := reader.(io.Seeker); ok {
		_, _ = seekReader.Seek(0, io.SeekStart)
	}
}
