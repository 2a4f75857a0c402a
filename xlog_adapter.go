// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"github.com/actforgood/xlog"
)

// LogLevelProvider provides a level read from a Settings object.
// It can be used to configure log level for a xlog.Logger.
// If the level setting is not resolved, or its value is not a known
// level label, the default provided level is returned.
// The setting is resolved each time the level is requested, so a
// Source reading ENV live, like EnvSource, picks up changes.
func LogLevelProvider(
	settings *Settings,
	lvlKey string,
	defaultLvl string,
	levelLabels map[xlog.Level]string,
) xlog.LevelProvider {
	labeledLevels := flipLevelLabels(levelLabels)
	defaultLevel := labeledLevels[defaultLvl]

	return func() xlog.Level {
		lvl, err := settings.String(lvlKey, defaultLvl)
		if err != nil {
			return defaultLevel
		}
		if level, found := labeledLevels[lvl]; found {
			return level
		}

		return defaultLevel
	}
}

// flipLevelLabels flips level labels map.
func flipLevelLabels(levelLabels map[xlog.Level]string) map[string]xlog.Level {
	flippedLevelLabels := make(map[string]xlog.Level, len(levelLabels))
	for lvl, label := range levelLabels {
		flippedLevelLabels[label] = lvl
	}

	return flippedLevelLabels
}

// LogErrorHandler is a handler which can be used in a Settings object
// (see SettingsWithErrorHandler). It logs the error with a xlog.Logger.
// Passed parameter is a function that returns the logger (the logger may
// itself be configured from Settings, this way they can be instantiated separately).
func LogErrorHandler(loggerGetter func() xlog.Logger) func(error) {
	return func(err error) {
		loggerGetter().Error(
			xlog.MessageKey, "[xsettings] could not resolve setting",
			xlog.ErrorKey, xlog.StackErr(err),
		)
	}
}
