// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/ini.v1"

	"github.com/actforgood/xsettings"
)

var iniConfigMap = map[string]string{
	"IMAGE_PATH":         "/srv/images",
	"PAGE_SIZE":          "25",
	"images/IMAGE_TYPES": "jpg;png",
}

const iniFilePath = "testdata/settings.ini"

func TestIniFileLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - valid file, valid content", testIniFileLoaderWithValidFile)
	t.Run("error - valid file, invalid content", testIniFileLoaderWithInvalidFileContent)
	t.Run("error - not found file", testIniFileLoaderWithNotFoundFile)
	t.Run("success - custom ini load options applied", testIniFileLoaderWithCustomIniLoadOptions)
	t.Run("success - custom section key func", testIniFileLoaderWithCustomKeyFuncOption)
}

func testIniFileLoaderWithValidFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.NewIniFileLoader(iniFilePath)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, iniConfigMap, config)
}

func testIniFileLoaderWithInvalidFileContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.NewIniFileLoader(iniFilePath + invalidFileExt)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, config)
	assertTrue(t, ini.IsErrDelimiterNotFound(err))
}

func testIniFileLoaderWithNotFoundFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.NewIniFileLoader("testdata/path/does/not/exist/settings.ini")

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, config)
	assertTrue(t, os.IsNotExist(err))
}

func testIniFileLoaderWithCustomIniLoadOptions(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.NewIniFileLoader(
		"testdata/path/does/not/exist/settings.ini",
		xsettings.IniFileLoaderWithLoadOptions(ini.LoadOptions{Loose: true}),
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, 0, len(config))
}

func testIniFileLoaderWithCustomKeyFuncOption(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.NewIniFileLoader(
		iniFilePath,
		xsettings.IniFileLoaderWithSectionKeyFunc(func(_, key string) string {
			return strings.ToLower(key)
		}),
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(
		t,
		map[string]string{
			"image_path":  "/srv/images",
			"page_size":   "25",
			"image_types": "jpg;png",
		},
		config,
	)
}
