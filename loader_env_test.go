// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"testing"

	"github.com/actforgood/xsettings"
)

func TestEnvLoader(t *testing.T) {
	t.Run("success - os env gets loaded", testEnvLoaderSuccess)
	t.Run("success - prefix filters and is stripped", testEnvLoaderWithPrefix)
	t.Run("success - safe-mutable config map", testEnvLoaderReturnsSafeMutableConfigMap)
}

func testEnvLoaderSuccess(t *testing.T) {
	// arrange
	subject := xsettings.EnvLoader()
	envName := getRandomEnvName()
	t.Setenv(envName, "/srv/images")

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, "/srv/images", config[envName])
}

func testEnvLoaderWithPrefix(t *testing.T) {
	// arrange
	var (
		envName = getRandomEnvName()
		prefix  = envName + "_"
		subject = xsettings.EnvLoader(prefix)
	)
	t.Setenv(prefix+"PAGE_SIZE", "25")
	t.Setenv(prefix+"IMAGE_PATH", "/srv/images=v2")

	// act
	config, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(
		t,
		map[string]string{
			"PAGE_SIZE":  "25",
			"IMAGE_PATH": "/srv/images=v2",
		},
		config,
	)
}

func testEnvLoaderReturnsSafeMutableConfigMap(t *testing.T) {
	// arrange
	subject := xsettings.EnvLoader()
	envName := getRandomEnvName()
	t.Setenv(envName, "bar")

	// act
	config1, err1 := subject.Load()

	// assert
	assertNil(t, err1)
	assertEqual(t, "bar", config1[envName])

	// modify first returned value, expect second returned value to be initial one.
	config1[envName] = "baz"

	// act
	config2, err2 := subject.Load()

	// assert
	assertNil(t, err2)
	assertEqual(t, "bar", config2[envName])
}

// getRandomEnvName returns a "XSETTINGS_TEST_ENV_<randomInt>" env name.
func getRandomEnvName() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(9999999))
	if err != nil {
		return ""
	}

	return "XSETTINGS_TEST_ENV_" + strconv.FormatInt(nBig.Int64(), 10)
}

func BenchmarkEnvLoader(b *testing.B) {
	subject := xsettings.EnvLoader()

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, err := subject.Load()
		if err != nil {
			b.Error(err)
		}
	}
}
