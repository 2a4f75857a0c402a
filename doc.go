// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

// Package xsettings provides typed access to application settings kept
// in a flat, string keyed configuration store (env, .env, ini, properties,
// json, yaml, toml or any custom Source).
//
// A Registry holds default values and required keys. Settings resolves a key
// against a Source, enforces the required policy, falls back to defaults and
// converts the value to string, bool, int, UUID or a FileExtensionSet.
// Key groups declared by independent packages can populate a Registry
// through a discovery pass.
package xsettings
