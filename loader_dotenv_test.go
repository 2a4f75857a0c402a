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

var dotEnvConfigMap = map[string]string{
	"IMAGE_PATH":        "/srv/images",
	"IMAGE_TYPES":       "JPG;JPEG;BMP;JPG;;",
	"PAGE_SIZE":         "25",
	"CULTURE_SWITCHING": "False",
}

const (
	dotEnvFilePath = "testdata/settings.env"
	invalidFileExt = ".invalid"
)

func TestDotEnvReaderLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - valid content", testDotEnvReaderLoaderWithValidContent)
	t.Run("error - invalid content", testDotEnvReaderLoaderWithInvalidContent)
}

func testDotEnvReaderLoaderWithValidContent(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		content = `# application settings
IMAGE_PATH=/srv/images
IMAGE_TYPES="JPG;JPEG;BMP;JPG;;"
PAGE_SIZE=25
CULTURE_SWITCHING=False
`
		subject = xsettings.DotEnvReaderLoader(bytes.NewReader([]byte(content)))
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, dotEnvConfigMap, config)
}

func testDotEnvReaderLoaderWithInvalidContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.DotEnvReaderLoader(bytes.NewReader([]byte("IMAGE_PATH /srv/images\n")))

	// act
	config, err := subject.Load()

	// assert
	assertNotNil(t, err)
	assertNil(t, config)
}

func TestDotEnvFileLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - valid file, valid content", testDotEnvFileLoaderWithValidFile)
	t.Run("error - valid file, invalid content", testDotEnvFileLoaderWithInvalidFileContent)
	t.Run("error - not found file", testDotEnvFileLoaderWithNotFoundFile)
}

func testDotEnvFileLoaderWithValidFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.DotEnvFileLoader(dotEnvFilePath)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, dotEnvConfigMap, config)
}

func testDotEnvFileLoaderWithInvalidFileContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.DotEnvFileLoader(dotEnvFilePath + invalidFileExt)

	// act
	config, err := subject.Load()

	// assert
	assertNotNil(t, err)
	assertNil(t, config)
}

func testDotEnvFileLoaderWithNotFoundFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.DotEnvFileLoader("testdata/path/does/not/exist/settings.env")

	// act
	config, err := subject.Load()

	// assert
	assertTrue(t, errors.Is(err, os.ErrNotExist))
	assertNil(t, config)
}
