// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

const (
	// NestedKeySeparator joins the keys of a nested document (json/yaml/toml)
	// into a flat setting key: {"db": {"host": "x"}} => "db.host".
	NestedKeySeparator = "."
	// ListValueSeparator joins the items of a list value into a single
	// setting value: ["jpg", "png"] => "jpg;png".
	ListValueSeparator = ";"
)

// flattenConfigMap reduces a decoded, possibly nested, document to a flat
// string key-value map.
func flattenConfigMap(document map[string]any) (map[string]string, error) {
	configMap := make(map[string]string, len(document))
	if err := flattenInto(configMap, "", document); err != nil {
		return nil, err
	}

	return configMap, nil
}

func flattenInto(configMap map[string]string, prefix string, document map[string]any) error {
	for key, value := range document {
		if prefix != "" {
			key = prefix + NestedKeySeparator + key
		}

		switch val := value.(type) {
		case map[string]any:
			if err := flattenInto(configMap, key, val); err != nil {
				return err
			}
		case map[any]any:
			nested, err := cast.ToStringMapE(val)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			if err := flattenInto(configMap, key, nested); err != nil {
				return err
			}
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				strItem, err := cast.ToStringE(item)
				if err != nil {
					return fmt.Errorf("key %q: %w", key, err)
				}
				items = append(items, strItem)
			}
			configMap[key] = strings.Join(items, ListValueSeparator)
		default:
			strValue, err := cast.ToStringE(val)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			configMap[key] = strValue
		}
	}

	return nil
}
