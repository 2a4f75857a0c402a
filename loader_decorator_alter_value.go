// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"strings"
)

// AlterValueFunc transforms a setting's raw value.
type AlterValueFunc func(value string) string

// AlterValueLoader decorates a loader, transforming the values of the settings
// matching any of the given matchers. With no matcher, every value is transformed.
//
// Example, values of an .ini file may carry trailing spaces:
//
//	loader := xsettings.AlterValueLoader(xsettings.NewIniFileLoader("app.ini"), xsettings.TrimSpace())
func AlterValueLoader(loader Loader, alter AlterValueFunc, matchers ...KVMatcher) Loader {
	return LoaderFunc(func() (map[string]string, error) {
		configMap, err := loader.Load()
		if err != nil {
			return nil, err
		}

		for key, value := range configMap {
			if matchesAny(matchers, key, value) {
				configMap[key] = alter(value)
			}
		}

		return configMap, nil
	})
}

func matchesAny(matchers []KVMatcher, key, value string) bool {
	if len(matchers) == 0 {
		return true
	}
	for _, match := range matchers {
		if match(key, value) {
			return true
		}
	}

	return false
}

// TrimSpace removes leading and trailing white space.
func TrimSpace() AlterValueFunc {
	return strings.TrimSpace
}

// ExtensionList rewrites a list of file extensions split by any of the given
// separators into the form Settings.FileExtensions reads by default:
// tokens trimmed, empty ones dropped, joined by DefaultExtensionSeparators.
// "jpg, png,,gif" with "," becomes "jpg;png;gif".
func ExtensionList(separators string) AlterValueFunc {
	return func(value string) string {
		tokens := strings.FieldsFunc(value, func(r rune) bool {
			return strings.ContainsRune(separators, r)
		})
		items := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if token = strings.TrimSpace(token); token != "" {
				items = append(items, token)
			}
		}

		return strings.Join(items, DefaultExtensionSeparators)
	}
}
