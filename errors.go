// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"fmt"
)

// ErrInvalidExtensionToken is returned when a single file extension is built
// from an empty or white space only token.
var ErrInvalidExtensionToken = errors.New("invalid file extension: empty token")

// MissingRequiredSettingError is returned when a required key has no raw value
// in the Source. Defaults never satisfy a required key.
type MissingRequiredSettingError struct {
	key string // the required key
}

// NewMissingRequiredSettingError instantiates a new MissingRequiredSettingError.
func NewMissingRequiredSettingError(key string) MissingRequiredSettingError {
	return MissingRequiredSettingError{key: key}
}

// Error returns string representation of the MissingRequiredSettingError.
func (e MissingRequiredSettingError) Error() string {
	return fmt.Sprintf(`required setting "%s" was not found`, e.key)
}

// Key returns the missing key.
func (e MissingRequiredSettingError) Key() string {
	return e.key
}

// MissingValueError is returned by a typed accessor which needs a value to parse,
// when neither the Source, nor an explicit default, nor the Registry provide one.
type MissingValueError struct {
	key        string // the key
	targetType string // the type a value was requested for
}

// NewMissingValueError instantiates a new MissingValueError.
func NewMissingValueError(key, targetType string) MissingValueError {
	return MissingValueError{key: key, targetType: targetType}
}

// Error returns string representation of the MissingValueError.
func (e MissingValueError) Error() string {
	return fmt.Sprintf(`setting "%s" has no value to be parsed as %s`, e.key, e.targetType)
}

// Key returns the key which has no value.
func (e MissingValueError) Key() string {
	return e.key
}

// InvalidFormatError is returned when a resolved value cannot be parsed to
// the requested type.
type InvalidFormatError struct {
	key        string // the key
	value      string // the raw value
	targetType string // the requested type
	err        error  // the underlying parse error
}

// NewInvalidFormatError instantiates a new InvalidFormatError.
func NewInvalidFormatError(key, value, targetType string, err error) InvalidFormatError {
	return InvalidFormatError{
		key:        key,
		value:      value,
		targetType: targetType,
		err:        err,
	}
}

// Error returns string representation of the InvalidFormatError.
func (e InvalidFormatError) Error() string {
	return fmt.Sprintf(`setting "%s" value "%s" is not a valid %s`, e.key, e.value, e.targetType)
}

// Unwrap returns the underlying parse error.
func (e InvalidFormatError) Unwrap() error {
	return e.err
}

// Key returns the key whose value could not be parsed.
func (e InvalidFormatError) Key() string {
	return e.key
}

// Value returns the raw value which could not be parsed.
func (e InvalidFormatError) Value() string {
	return e.value
}

// TargetType returns the requested type.
func (e InvalidFormatError) TargetType() string {
	return e.targetType
}

// ConflictingDeclarationError is returned by the discovery pass when the same
// key is declared by two key groups with a different default or required flag.
type ConflictingDeclarationError struct {
	key         string // the key
	firstGroup  string // the group which declared the key first
	secondGroup string // the group whose declaration conflicts
}

// NewConflictingDeclarationError instantiates a new ConflictingDeclarationError.
func NewConflictingDeclarationError(key, firstGroup, secondGroup string) ConflictingDeclarationError {
	return ConflictingDeclarationError{
		key:         key,
		firstGroup:  firstGroup,
		secondGroup: secondGroup,
	}
}

// Error returns string representation of the ConflictingDeclarationError.
func (e ConflictingDeclarationError) Error() string {
	return fmt.Sprintf(
		`key "%s" has conflicting declarations in groups "%s" and "%s"`,
		e.key, e.firstGroup, e.secondGroup,
	)
}

// Key returns the conflicting key.
func (e ConflictingDeclarationError) Key() string {
	return e.key
}
