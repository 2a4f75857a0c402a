// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"

	"github.com/actforgood/xerr"
)

// ErrNilRegistry is returned by Discover when no registry is given to rebuild.
var ErrNilRegistry = errors.New("nil registry")

// Discover rebuilds the registry out of the declarations of given key groups.
//
// Declarations with neither a default nor a required flag are skipped.
// The same key may be declared by several groups, as long as the declarations
// agree on both default and required flag; otherwise a ConflictingDeclarationError
// is returned for each conflicting key and the registry is left untouched.
// On success, registry's previous defaults and required keys are replaced,
// atomically. Running it again with the same groups yields the same registry.
// A nil registry results in ErrNilRegistry.
func Discover(registry *Registry, groups ...KeyGroup) error {
	if registry == nil {
		return ErrNilRegistry
	}

	type origin struct {
		decl  KeyDecl
		group string
	}
	var (
		seen     = make(map[string]origin)
		defaults = make(map[string]string)
		required = make(map[string]struct{})
		mErr     *xerr.MultiError
	)

	for _, group := range groups {
		groupName := group.GroupName()
		for _, decl := range group.KeyDeclarations() {
			if !decl.needsRegistration() {
				continue
			}

			if prev, found := seen[decl.Key]; found {
				if !sameDeclaration(prev.decl, decl) {
					mErr = mErr.Add(NewConflictingDeclarationError(decl.Key, prev.group, groupName))
				}

				continue
			}
			seen[decl.Key] = origin{decl: decl, group: groupName}

			if decl.HasDefault {
				defaults[decl.Key] = decl.Default
			}
			if decl.Required {
				required[decl.Key] = struct{}{}
			}
		}
	}

	if err := mErr.ErrOrNil(); err != nil {
		return err
	}

	registry.rebuild(defaults, required)

	return nil
}

// DiscoverCatalog rebuilds the registry out of all key groups of a catalog,
// see Discover. Pass KeyGroups to use the process wide catalog.
func DiscoverCatalog(registry *Registry, catalog *KeyGroupCatalog) error {
	return Discover(registry, catalog.Groups()...)
}

// sameDeclaration returns true if two declarations of a key agree.
func sameDeclaration(a, b KeyDecl) bool {
	return a.HasDefault == b.HasDefault &&
		a.Default == b.Default &&
		a.Required == b.Required
}
