// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/actforgood/xsettings"
)

func TestAliasLoader(t *testing.T) {
	t.Parallel()

	source := map[string]string{
		"IMG_PATH":    "/srv/images",
		"IMAGES_DIR":  "/data/images",
		"PAGE_SIZE":   "",
		"PER_PAGE":    "25",
		"IMAGE_TYPES": "jpg",
		"IMG_TYPES":   "png",
	}
	tests := [...]struct {
		name        string
		alias       xsettings.Alias
		key         string
		expected    string
		expectedLen int
	}{
		{
			name:        "first former key with a value wins",
			alias:       xsettings.Alias{Key: "IMAGE_PATH", Former: []string{"IMG_DIR", "IMG_PATH", "IMAGES_DIR"}},
			key:         "IMAGE_PATH",
			expected:    "/srv/images",
			expectedLen: 7,
		},
		{
			name:        "empty current key is replaced",
			alias:       xsettings.Alias{Key: "PAGE_SIZE", Former: []string{"PER_PAGE"}},
			key:         "PAGE_SIZE",
			expected:    "25",
			expectedLen: 6,
		},
		{
			name:        "current key with a value is kept",
			alias:       xsettings.Alias{Key: "IMAGE_TYPES", Former: []string{"IMG_TYPES"}},
			key:         "IMAGE_TYPES",
			expected:    "jpg",
			expectedLen: 6,
		},
	}

	for _, testData := range tests {
		test := testData // capture range variable
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// arrange
			subject := xsettings.AliasLoader(xsettings.PlainLoader(source), test.alias)

			// act
			config, err := subject.Load()

			// assert
			assertNil(t, err)
			assertEqual(t, test.expected, config[test.key])
			assertEqual(t, test.expectedLen, len(config))
		})
	}
}

func TestAliasLoader_formerKeysWithoutValue(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xsettings.AliasLoader(
		xsettings.PlainLoader(map[string]string{"IMG_PATH": ""}),
		xsettings.Alias{Key: "IMAGE_PATH", Former: []string{"IMG_PATH", "IMG_DIR"}},
	)

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, map[string]string{"IMG_PATH": ""}, config)
}

func TestAliasLoader_invalidAlias(t *testing.T) {
	t.Parallel()

	for _, alias := range [...]xsettings.Alias{
		{Key: "IMAGE_PATH"},
		{Former: []string{"IMG_PATH"}},
	} {
		// arrange
		subject := xsettings.AliasLoader(xsettings.PlainLoader(map[string]string{"IMG_PATH": "/srv"}), alias)

		// act
		config, err := subject.Load()

		// assert
		assertTrue(t, errors.Is(err, xsettings.ErrInvalidAlias))
		assertNil(t, config)
	}
}

func TestAliasLoader_returnsDecoratedLoaderErr(t *testing.T) {
	t.Parallel()

	// arrange
	expectedErr := errors.New("intentionally triggered test error")
	subject := xsettings.AliasLoader(
		xsettings.LoaderFunc(func() (map[string]string, error) {
			return nil, expectedErr
		}),
		xsettings.Alias{Key: "IMAGE_PATH", Former: []string{"IMG_PATH"}},
	)

	// act
	config, err := subject.Load()

	// assert
	assertTrue(t, errors.Is(err, expectedErr))
	assertNil(t, config)
}

func ExampleAliasLoader() {
	// IMG_PATH was renamed to IMAGE_PATH, old deployments still set IMG_PATH.
	loader := xsettings.AliasLoader(
		xsettings.PlainLoader(map[string]string{"IMG_PATH": "/srv/images"}),
		xsettings.Alias{Key: "IMAGE_PATH", Former: []string{"IMG_PATH"}},
	)
	src, err := xsettings.NewLoaderSource(loader)
	if err != nil {
		panic(err)
	}
	imagePath, _ := xsettings.NewSettings(src, nil).String("IMAGE_PATH")
	fmt.Println(imagePath)

	// Output:
	// /srv/images
}
