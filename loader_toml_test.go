// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/actforgood/xsettings"
)

const tomlFilePath = "testdata/settings.toml"

func TestTOMLReaderLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - valid toml content is flattened", testTOMLReaderLoaderWithValidContent)
	t.Run("error - invalid toml content", testTOMLReaderLoaderWithInvalidContent)
}

func testTOMLReaderLoaderWithValidContent(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		content = `IMAGE_PATH = "/srv/images"
PAGE_SIZE = 25
CULTURE_SWITCHING = false
IMAGE_TYPES = ["jpg", "png"]

[db]
host = "127.0.0.1"
port = 3306
`
		subject = xsettings.TOMLReaderLoader(bytes.NewReader([]byte(content)))
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, structuredConfigMap, config)
}

func testTOMLReaderLoaderWithInvalidContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.TOMLReaderLoader(bytes.NewReader([]byte(`IMAGE_PATH = /srv/images`)))

	// act
	config, err := subject.Load()

	// assert
	assertNotNil(t, err)
	assertNil(t, config)
}

func TestTOMLFileLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - valid file, valid content", testTOMLFileLoaderWithValidFile)
	t.Run("error - valid file, invalid content", testTOMLFileLoaderWithInvalidFileContent)
	t.Run("error - not found file", testTOMLFileLoaderWithNotFoundFile)
}

func testTOMLFileLoaderWithValidFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.TOMLFileLoader(tomlFilePath)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, structuredConfigMap, config)
}

func testTOMLFileLoaderWithInvalidFileContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.TOMLFileLoader(tomlFilePath + invalidFileExt)

	// act
	config, err := subject.Load()

	// assert
	assertNotNil(t, err)
	assertNil(t, config)
}

func testTOMLFileLoaderWithNotFoundFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.TOMLFileLoader("testdata/path/does/not/exist/settings.toml")

	// act
	config, err := subject.Load()

	// assert
	assertTrue(t, errors.Is(err, os.ErrNotExist))
	assertNil(t, config)
}
