// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/spf13/cast"
)

var (
	// ErrDuplicateKeyGroup is returned when registering a key group whose
	// name is already registered in a catalog.
	ErrDuplicateKeyGroup = errors.New("key group already registered")
	// ErrKeyGroupCatalogSealed is returned when registering a key group
	// in a sealed catalog.
	ErrKeyGroupCatalogSealed = errors.New("key group catalog is sealed")
	// ErrInvalidKeyGroup is returned when a key group cannot be built.
	ErrInvalidKeyGroup = errors.New("invalid key group")
)

// Struct tags read by StructKeyGroup.
const (
	defaultTag  = "default"
	requiredTag = "required"
)

// KeyDecl declares a setting key, with an optional default value
// and an optional required flag.
type KeyDecl struct {
	Key        string
	Default    string
	HasDefault bool
	Required   bool
}

// KeyDeclOption defines optional function for configuring a KeyDecl.
type KeyDeclOption func(*KeyDecl)

// Declare builds a KeyDecl.
//
// Example:
//
//	xsettings.Declare(PageSize, xsettings.Default(10))
//	xsettings.Declare(ImagePath, xsettings.Required())
func Declare(key string, opts ...KeyDeclOption) KeyDecl {
	decl := KeyDecl{Key: key}
	for _, opt := range opts {
		opt(&decl)
	}

	return decl
}

// Default sets the default value of a declared key.
// Non string values (bool, int, float, time.Duration, etc.) are converted to string.
func Default(value any) KeyDeclOption {
	return func(decl *KeyDecl) {
		decl.Default = cast.ToString(value)
		decl.HasDefault = true
	}
}

// Required marks a declared key as required.
func Required() KeyDeclOption {
	return func(decl *KeyDecl) {
		decl.Required = true
	}
}

// needsRegistration returns true if the declaration carries a default or a required flag.
func (decl KeyDecl) needsRegistration() bool {
	return decl.HasDefault || decl.Required
}

// KeyGroup is a named collection of key declarations, usually owned by
// the package which uses those settings.
type KeyGroup interface {
	// GroupName returns the group's name, unique within a catalog.
	GroupName() string
	// KeyDeclarations returns the declared keys.
	KeyDeclarations() []KeyDecl
}

// staticKeyGroup is a KeyGroup built from an explicit list of declarations.
type staticKeyGroup struct {
	name  string
	decls []KeyDecl
}

// NewKeyGroup returns a KeyGroup made of given declarations.
func NewKeyGroup(name string, decls ...KeyDecl) KeyGroup {
	return staticKeyGroup{name: name, decls: decls}
}

// GroupName returns the group's name.
func (group staticKeyGroup) GroupName() string {
	return group.name
}

// KeyDeclarations returns the declared keys.
func (group staticKeyGroup) KeyDeclarations() []KeyDecl {
	return group.decls
}

// StructKeyGroup builds a KeyGroup out of a struct (or pointer to struct)
// whose exported string fields hold setting keys. A field's value is the key;
// if it's empty, the field's name is the key. Metadata is read from tags:
//
//	var AppSettingKeys = struct {
//		ImageTypes       string `default:".jpg;.jpeg"`
//		CultureSwitching string `default:"false"`
//		ImagePath        string `required:"true"`
//		PageSize         string `default:"50"`
//		Optional         string
//	}{
//		ImageTypes:       "IMAGE_TYPES",
//		CultureSwitching: "CULTURE_SWITCHING",
//		ImagePath:        "IMAGE_PATH",
//		PageSize:         "PAGE_SIZE",
//		Optional:         "OPTIONAL",
//	}
//
// Non string and unexported fields are ignored.
func StructKeyGroup(name string, keys any) (KeyGroup, error) {
	val := reflect.ValueOf(keys)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %q expected a struct, got %T", ErrInvalidKeyGroup, name, keys)
	}

	typ := val.Type()
	decls := make([]KeyDecl, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.String {
			continue
		}

		decl := KeyDecl{Key: val.Field(i).String()}
		if decl.Key == "" {
			decl.Key = field.Name
		}
		if def, found := field.Tag.Lookup(defaultTag); found {
			decl.Default = def
			decl.HasDefault = true
		}
		if req, found := field.Tag.Lookup(requiredTag); found {
			required, err := strconv.ParseBool(req)
			if err != nil {
				return nil, fmt.Errorf("%w: %q field %s: %w", ErrInvalidKeyGroup, name, field.Name, err)
			}
			decl.Required = required
		}
		decls = append(decls, decl)
	}

	return NewKeyGroup(name, decls...), nil
}

// KeyGroupCatalog holds the key groups visible to a discovery pass.
// It is safe for concurrent use.
type KeyGroupCatalog struct {
	groups map[string]KeyGroup
	mu     sync.RWMutex
	sealed atomic.Bool
}

// NewKeyGroupCatalog instantiates a new, empty, KeyGroupCatalog.
func NewKeyGroupCatalog() *KeyGroupCatalog {
	return &KeyGroupCatalog{groups: make(map[string]KeyGroup)}
}

// Register adds a key group to the catalog.
// ErrDuplicateKeyGroup is returned if the group's name is already registered.
func (catalog *KeyGroupCatalog) Register(group KeyGroup) error {
	if catalog.Sealed() {
		return ErrKeyGroupCatalogSealed
	}
	name := group.GroupName()

	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if _, exists := catalog.groups[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKeyGroup, name)
	}
	catalog.groups[name] = group

	return nil
}

// MustRegister panics on registration error. Useful from init() blocks.
func (catalog *KeyGroupCatalog) MustRegister(group KeyGroup) {
	if err := catalog.Register(group); err != nil {
		panic(err)
	}
}

// Groups returns the registered key groups, sorted by name.
func (catalog *KeyGroupCatalog) Groups() []KeyGroup {
	catalog.mu.RLock()
	groups := make([]KeyGroup, 0, len(catalog.groups))
	for _, group := range catalog.groups {
		groups = append(groups, group)
	}
	catalog.mu.RUnlock()

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].GroupName() < groups[j].GroupName()
	})

	return groups
}

// Seal prevents further registrations. It's idempotent.
// Returns true if this call changed the state from unsealed to sealed.
func (catalog *KeyGroupCatalog) Seal() bool {
	return !catalog.sealed.Swap(true)
}

// Sealed reports whether the catalog is sealed.
func (catalog *KeyGroupCatalog) Sealed() bool {
	return catalog.sealed.Load()
}

// KeyGroups is the process wide catalog packages register their key groups in.
var KeyGroups = NewKeyGroupCatalog()

// RegisterKeyGroup registers a key group in the KeyGroups catalog.
func RegisterKeyGroup(group KeyGroup) error {
	return KeyGroups.Register(group)
}

// MustRegisterKeyGroup registers a key group in the KeyGroups catalog,
// and panics on error. Typical usage:
//
//	func init() {
//		xsettings.MustRegisterKeyGroup(xsettings.NewKeyGroup("images",
//			xsettings.Declare("IMAGE_TYPES", xsettings.Default(".jpg;.jpeg")),
//			xsettings.Declare("IMAGE_PATH", xsettings.Required()),
//		))
//	}
func MustRegisterKeyGroup(group KeyGroup) {
	KeyGroups.MustRegister(group)
}
