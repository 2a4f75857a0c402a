// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"strconv"
	"strings"

	"github.com/actforgood/xerr"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Target type names, as they appear in InvalidFormatError and MissingValueError.
const (
	TypeBool = "bool"
	TypeInt  = "int"
	TypeUUID = "uuid"
)

// Settings resolves settings from a Source, with defaults and required keys
// taken from a Registry.
//
// A key is resolved as follows:
//   - the raw value is looked up in the Source; an empty value counts as absent;
//   - if it is absent and the key is required, a MissingRequiredSettingError is returned,
//     no default is considered;
//   - if it is absent, the explicit default passed to the accessor, if any, is used;
//   - if still absent, the Registry default, if any, is used.
type Settings struct {
	// source is the external store raw values are looked up in.
	source Source
	// registry holds defaults and required keys.
	registry *Registry
	// extSeparators are the characters a FileExtensionSet value is split by.
	extSeparators string
	// errorHandler is an optional handler for errors returned by accessors.
	errorHandler func(error)
}

// NewSettings instantiates a new Settings object.
// A nil registry is replaced with an empty one.
func NewSettings(source Source, registry *Registry, opts ...SettingsOption) *Settings {
	if registry == nil {
		registry = NewRegistry()
	}
	settings := &Settings{
		source:        source,
		registry:      registry,
		extSeparators: DefaultExtensionSeparators,
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(settings)
	}

	return settings
}

// Registry returns the Registry settings are resolved with.
func (s *Settings) Registry() *Registry {
	return s.registry
}

// Resolve returns the raw value of a key after applying the required check
// and the Registry default. The bool result reports whether a value was resolved.
func (s *Settings) Resolve(key string) (string, bool, error) {
	return s.resolve(key, nil)
}

// String returns a setting's value.
// If nothing is resolved, "" is returned (absence alone is not an error,
// unless the key is required).
func (s *Settings) String(key string, def ...string) (string, error) {
	value, _, err := s.resolve(key, explicitDefault(def, strIdentity))

	return value, err
}

// Bool returns a setting's value parsed as boolean.
// Accepted values are those of [strconv.ParseBool] ("1", "t", "true", "False", etc.).
func (s *Settings) Bool(key string, def ...bool) (bool, error) {
	value, err := s.resolveToParse(key, TypeBool, explicitDefault(def, strconv.FormatBool))
	if err != nil {
		return false, err
	}

	result, err := cast.ToBoolE(value)
	if err != nil {
		return false, s.handle(NewInvalidFormatError(key, value, TypeBool, err))
	}

	return result, nil
}

// Int returns a setting's value parsed as a base 10 integer.
// Leading zeros do not switch base, "010" is 10.
func (s *Settings) Int(key string, def ...int) (int, error) {
	value, err := s.resolveToParse(key, TypeInt, explicitDefault(def, strconv.Itoa))
	if err != nil {
		return 0, err
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, s.handle(NewInvalidFormatError(key, value, TypeInt, err))
	}

	return result, nil
}

// UUID returns a setting's value parsed as an UUID.
// Hyphenated, braced and urn:uuid: forms are accepted.
func (s *Settings) UUID(key string, def ...uuid.UUID) (uuid.UUID, error) {
	value, err := s.resolveToParse(key, TypeUUID, explicitDefault(def, uuid.UUID.String))
	if err != nil {
		return uuid.Nil, err
	}

	result, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, s.handle(NewInvalidFormatError(key, value, TypeUUID, err))
	}

	return result, nil
}

// FileExtensions returns a setting's value as a set of file extensions.
// The value is split by the configured separators (";" by default), empty
// tokens are discarded and duplicates collapse.
// If nothing is resolved, an empty set is returned.
func (s *Settings) FileExtensions(key string, def ...string) (FileExtensionSet, error) {
	value, _, err := s.resolve(key, explicitDefault(def, strIdentity))
	if err != nil {
		return nil, err
	}

	return ParseFileExtensionSet(value, s.extSeparators), nil
}

// Missing returns the required keys which have no raw value in the Source, sorted.
// It can be used at application start to report all missing settings at once.
func (s *Settings) Missing() []string {
	var missing []string
	for _, key := range s.registry.RequiredKeys() {
		if _, found := s.lookup(key); !found {
			missing = append(missing, key)
		}
	}

	return missing
}

// Validate returns an error made of a MissingRequiredSettingError for each
// required key which has no raw value in the Source, or nil if there is none.
func (s *Settings) Validate() error {
	var mErr *xerr.MultiError
	for _, key := range s.Missing() {
		mErr = mErr.Add(NewMissingRequiredSettingError(key))
	}

	if err := mErr.ErrOrNil(); err != nil {
		return s.handle(err)
	}

	return nil
}

// resolve applies the resolution chain, see Settings.
func (s *Settings) resolve(key string, def *string) (string, bool, error) {
	if value, found := s.lookup(key); found {
		return value, true, nil
	}
	if s.registry.IsRequired(key) {
		return "", false, s.handle(NewMissingRequiredSettingError(key))
	}
	if def != nil {
		return *def, true, nil
	}
	if value, found := s.registry.Default(key); found {
		return value, true, nil
	}

	return "", false, nil
}

// resolveToParse resolves a key whose value is going to be parsed to targetType,
// therefore absence is an error.
func (s *Settings) resolveToParse(key, targetType string, def *string) (string, error) {
	value, found, err := s.resolve(key, def)
	if err != nil {
		return "", err
	}
	if !found {
		return "", s.handle(NewMissingValueError(key, targetType))
	}

	return strings.TrimSpace(value), nil
}

// lookup returns the raw value from the Source, treating "" as absent.
func (s *Settings) lookup(key string) (string, bool) {
	value, found := s.source.Lookup(key)
	if !found || value == "" {
		return "", false
	}

	return value, true
}

// handle passes err to the error handler, if any, and returns it.
func (s *Settings) handle(err error) error {
	if s.errorHandler != nil {
		s.errorHandler(err)
	}

	return err
}

// explicitDefault returns the first variadic default formatted as string, or nil.
func explicitDefault[T any](def []T, format func(T) string) *string {
	if len(def) == 0 {
		return nil
	}
	value := format(def[0])

	return &value
}

func strIdentity(s string) string {
	return s
}

// SettingsOption defines optional function for configuring
// a Settings object.
type SettingsOption func(*Settings)

// SettingsWithExtensionSeparators sets the characters a FileExtensionSet
// setting is split by. Every character of seps is a separator.
// By default, ";" is used. An empty seps is ignored.
func SettingsWithExtensionSeparators(seps string) SettingsOption {
	return func(s *Settings) {
		if seps != "" {
			s.extSeparators = seps
		}
	}
}

// SettingsWithErrorHandler sets a handler called with every error an accessor returns.
// You can log the error, for example, see LogErrorHandler.
//
// By default, there is no handler.
func SettingsWithErrorHandler(errHandler func(error)) SettingsOption {
	return func(s *Settings) {
		s.errorHandler = errHandler
	}
}
