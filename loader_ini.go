// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"gopkg.in/ini.v1"
)

// IniFileLoader is a loader that returns configuration from
// an INI content based file.
type IniFileLoader struct {
	// filePath is ini content based file to be parsed.
	filePath string
	// loadOpts are the original package parse options.
	loadOpts ini.LoadOptions
	// keyFunc returns the final setting key based on a section and a key under it.
	keyFunc func(section, key string) string
}

// NewIniFileLoader instantiates a new IniFileLoader object that loads
// INI configuration from a file.
// The location of INI content based file is given as parameter.
func NewIniFileLoader(filePath string, opts ...IniFileLoaderOption) IniFileLoader {
	loader := IniFileLoader{
		filePath: filePath,
		loadOpts: ini.LoadOptions{},
		keyFunc:  defaultIniKeyFunc,
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(&loader)
	}

	return loader
}

// Load returns a configuration key-value map from a INI file,
// or an error if something bad happens along the process.
func (loader IniFileLoader) Load() (map[string]string, error) {
	cfg, err := ini.LoadSources(loader.loadOpts, loader.filePath)
	if err != nil {
		return nil, err
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configMap[loader.keyFunc(section.Name(), key.Name())] = key.Value()
		}
	}

	return configMap, nil
}

// IniFileLoaderOption defines optional function for configuring
// an INI File Loader.
type IniFileLoaderOption func(*IniFileLoader)

// IniFileLoaderWithLoadOptions sets given ini load options on the loader.
// By default, an empty object is used.
func IniFileLoaderWithLoadOptions(iniLoadOpts ini.LoadOptions) IniFileLoaderOption {
	return func(loader *IniFileLoader) {
		loader.loadOpts = iniLoadOpts
	}
}

// IniFileLoaderWithSectionKeyFunc sets given setting key provider based
// on a key and the section it belongs to.
//
// By default keys from the default section are kept as they are, and keys
// from any other section become <section/key>.
//
// You may want for example to provide a custom function that ignores the section:
//
//	xsettings.IniFileLoaderWithSectionKeyFunc(func(_, key string) string {
//		return key
//	})
func IniFileLoaderWithSectionKeyFunc(keyFunc func(section, key string) string) IniFileLoaderOption {
	return func(loader *IniFileLoader) {
		loader.keyFunc = keyFunc
	}
}

// defaultIniKeyFunc produces "PAGE_SIZE" and "images/IMAGE_PATH" for:
//
//	PAGE_SIZE=10
//	[images]
//	IMAGE_PATH=/srv/images
func defaultIniKeyFunc(section, key string) string {
	if section == ini.DefaultSection {
		return key
	}

	return section + "/" + key
}
