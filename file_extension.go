// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"sort"
	"strings"
)

const (
	// extensionPrefix is the single leading character of a normalized extension.
	extensionPrefix = "."
	// DefaultExtensionSeparators are the characters a FileExtensionSet setting
	// is split by, if not configured otherwise.
	DefaultExtensionSeparators = ";"
)

// FileExtension is a normalized file extension: lower case, with exactly
// one leading dot. "JPG", ".jpg" and " .Jpg " are the same FileExtension.
// The zero value is not a valid extension.
type FileExtension struct {
	value string
}

// NewFileExtension builds a normalized FileExtension out of a raw token.
// White space and all leading dots are trimmed, the rest is lower cased.
// ErrInvalidExtensionToken is returned if nothing remains.
func NewFileExtension(raw string) (FileExtension, error) {
	ext := strings.TrimLeft(strings.TrimSpace(raw), extensionPrefix)
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return FileExtension{}, ErrInvalidExtensionToken
	}

	return FileExtension{value: extensionPrefix + strings.ToLower(ext)}, nil
}

// String returns the normalized extension, like ".jpg".
func (ext FileExtension) String() string {
	return ext.value
}

// FileExtensionSet is a set of normalized file extensions.
// Membership is checked on the normalized form, so it's case and leading dot insensitive.
type FileExtensionSet map[FileExtension]struct{}

// NewFileExtensionSet builds a set out of given raw extensions.
// Duplicates (after normalization) collapse. An empty token is an error
// (ErrInvalidExtensionToken).
func NewFileExtensionSet(raws ...string) (FileExtensionSet, error) {
	set := make(FileExtensionSet, len(raws))
	for _, raw := range raws {
		if err := set.Add(raw); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// ParseFileExtensionSet splits value by any of the separators characters
// and builds a set out of the resulting tokens. Empty tokens are discarded.
// If separators is empty, DefaultExtensionSeparators are used.
//
// Example: "JPG;jpeg; .png ;jpg;;" => {.jpg, .jpeg, .png}.
func ParseFileExtensionSet(value, separators string) FileExtensionSet {
	if separators == "" {
		separators = DefaultExtensionSeparators
	}
	tokens := strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	set := make(FileExtensionSet, len(tokens))
	for _, token := range tokens {
		if ext, err := NewFileExtension(token); err == nil {
			set[ext] = struct{}{}
		}
	}

	return set
}

// Add normalizes and adds a raw extension to the set.
func (set FileExtensionSet) Add(raw string) error {
	ext, err := NewFileExtension(raw)
	if err != nil {
		return err
	}
	set[ext] = struct{}{}

	return nil
}

// Contains returns true if the set contains the normalized form of a raw extension.
// A token which is not a valid extension is never contained.
func (set FileExtensionSet) Contains(raw string) bool {
	ext, err := NewFileExtension(raw)
	if err != nil {
		return false
	}

	return set.Has(ext)
}

// Has returns true if the set contains the extension.
func (set FileExtensionSet) Has(ext FileExtension) bool {
	_, found := set[ext]

	return found
}

// Len returns the no. of extensions in the set.
func (set FileExtensionSet) Len() int {
	return len(set)
}

// Extensions returns the extensions, sorted.
func (set FileExtensionSet) Extensions() []FileExtension {
	exts := make([]FileExtension, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		return exts[i].value < exts[j].value
	})

	return exts
}

// String returns the sorted extensions joined by ";", like ".bmp;.jpeg;.jpg".
func (set FileExtensionSet) String() string {
	exts := set.Extensions()
	values := make([]string, len(exts))
	for i, ext := range exts {
		values[i] = ext.value
	}

	return strings.Join(values, DefaultExtensionSeparators)
}
