// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// NopSource is a no-operation Source, it never finds a key.
// With it, Settings resolve only defaults.
type NopSource struct{}

// Lookup returns "", false.
func (NopSource) Lookup(string) (string, bool) {
	return "", false
}
