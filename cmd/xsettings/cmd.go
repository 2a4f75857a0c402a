// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/actforgood/xlog"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/actforgood/xsettings"
)

// value types accepted by the get command.
const (
	typeString = "string"
	typeBool   = "bool"
	typeInt    = "int"
	typeUUID   = "uuid"
	typeExt    = "ext"
)

var errUnknownValueType = errors.New("unknown value type")

// the command's own minimum log level setting, read from environment.
const (
	logLevelKey     = "XSETTINGS_LOG_LEVEL"
	defaultLogLevel = "WARN"
)

var errInvalidAliasFlag = errors.New("alias must be given as KEY=FORMER_KEY")

// cli holds the state shared by all commands.
type cli struct {
	stdout io.Writer
	logger xlog.Logger

	configFiles   []string
	optionalFiles []string
	noEnv         bool
	envPrefix     string
	aliases       []string
	extSeparators string
	required      []string
	defaults      map[string]string

	// reported is set once an error was already logged by the settings' error handler.
	reported bool
}

// newLogger returns a logger whose minimum level is read, at every log call,
// from the XSETTINGS_LOG_LEVEL setting of given source.
func newLogger(w io.Writer, src xsettings.Source) xlog.Logger {
	opts := xlog.NewCommonOpts()
	opts.MinLevel = xsettings.LogLevelProvider(
		xsettings.NewSettings(src, nil),
		logLevelKey,
		defaultLogLevel,
		opts.LevelLabels,
	)

	return xlog.NewSyncLogger(w, xlog.SyncLoggerWithOptions(opts))
}

// run executes the command line and returns the process exit code.
func run(args []string, logger xlog.Logger) int {
	c := &cli{
		stdout: os.Stdout,
		logger: logger,
	}

	return c.execute(args)
}

func (c *cli) execute(args []string) int {
	cmd := c.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(c.stdout)

	if err := cmd.Execute(); err != nil {
		if !c.reported {
			c.logger.Error(
				xlog.MessageKey, "[xsettings] command failed",
				xlog.ErrorKey, err,
			)
		}

		return 1
	}

	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xsettings",
		Short:         "Inspect typed settings resolved from files and environment",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringArrayVar(
		&c.configFiles, "config", nil,
		"configuration file (.env, .ini, .properties, .json, .yaml, .toml), repeatable; later files overwrite earlier ones",
	)
	flags.StringArrayVar(
		&c.optionalFiles, "optional-config", nil,
		"configuration file which may be missing, repeatable; read after --config files",
	)
	flags.BoolVar(&c.noEnv, "no-env", false, "do not look up settings in environment variables")
	flags.StringVar(&c.envPrefix, "env-prefix", "", "only environment variables with this prefix are read, prefix is stripped from keys")
	flags.StringArrayVar(&c.aliases, "alias", nil, "KEY=FORMER_KEY, read KEY from FORMER_KEY when KEY has no value, repeatable")
	flags.StringVar(&c.extSeparators, "ext-separators", "", "separators of file extension lists, for get --type ext")
	flags.StringArrayVar(&c.required, "require", nil, "mark a key as required, repeatable")
	flags.StringToStringVar(&c.defaults, "set-default", nil, "register a default as KEY=VALUE, repeatable")

	root.AddCommand(c.getCmd(), c.checkCmd(), c.listCmd())

	return root
}

func (c *cli) getCmd() *cobra.Command {
	var valueType, def string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the resolved value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			var extKeys []string
			if valueType == typeExt {
				extKeys = append(extKeys, key)
			}
			settings, err := c.settings(extKeys...)
			if err != nil {
				return err
			}

			var defs []string
			if cmd.Flags().Changed("default") {
				defs = append(defs, def)
			}

			value, err := getValue(settings, key, valueType, defs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

			return err
		},
	}
	cmd.Flags().StringVar(&valueType, "type", typeString, "value type: string, bool, int, uuid or ext")
	cmd.Flags().StringVar(&def, "default", "", "explicit default, applied when the setting has no value")

	return cmd
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify all required settings have a value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.settings()
			if err != nil {
				return err
			}

			if missing := settings.Missing(); len(missing) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "missing: "+strings.Join(missing, ", "))

				return settings.Validate()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return err
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	var prefixes []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the loaded settings as KEY=VALUE, sorted by key",
		Long:  "Print the loaded settings as KEY=VALUE, sorted by key. Empty values are not listed, they count as absent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := c.loader()
			if err != nil {
				return err
			}

			filters := []xsettings.FilterKV{xsettings.Deny(xsettings.EmptyValue)}
			for _, prefix := range prefixes {
				filters = append(filters, xsettings.Allow(xsettings.KeyWithPrefix(prefix)))
			}
			src, err := xsettings.NewLoaderSource(xsettings.FilterKVLoader(loader, filters...))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range src.Keys() {
				value, _ := src.Lookup(key)
				if _, err := fmt.Fprintf(out, "%s=%s\n", key, value); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&prefixes, "prefix", nil, "list only keys with this prefix, repeatable")

	return cmd
}

// loader builds the settings loader out of the command line flags.
// File values are trimmed. Values of extKeys are normalized to
// ";" separated lists when --ext-separators is given.
func (c *cli) loader(extKeys ...string) (xsettings.Loader, error) {
	aliases, err := parseAliases(c.aliases)
	if err != nil {
		return nil, err
	}

	loaders := make([]xsettings.Loader, 0, len(c.configFiles)+len(c.optionalFiles)+1)
	for _, filePath := range c.configFiles {
		loaders = append(loaders, xsettings.AlterValueLoader(xsettings.FileLoader(filePath), xsettings.TrimSpace()))
	}
	for _, filePath := range c.optionalFiles {
		optional := xsettings.OptionalFileLoader(filePath, func(err error) {
			c.logger.Warn(
				xlog.MessageKey, "[xsettings] optional configuration file not loaded",
				xlog.ErrorKey, err,
			)
		})
		loaders = append(loaders, xsettings.AlterValueLoader(optional, xsettings.TrimSpace()))
	}
	if !c.noEnv {
		loaders = append(loaders, xsettings.EnvLoader(c.envPrefix))
	}

	var loader xsettings.Loader = xsettings.NewMultiLoader(true, loaders...)
	if len(aliases) > 0 {
		loader = xsettings.AliasLoader(loader, aliases...)
	}
	if c.extSeparators != "" && len(extKeys) > 0 {
		loader = xsettings.AlterValueLoader(
			loader,
			xsettings.ExtensionList(c.extSeparators),
			xsettings.ExactKeys(extKeys...),
		)
	}

	return loader, nil
}

// settings builds the Settings out of the command line flags.
func (c *cli) settings(extKeys ...string) (*xsettings.Settings, error) {
	loader, err := c.loader(extKeys...)
	if err != nil {
		return nil, err
	}
	src, err := xsettings.NewLoaderSource(loader)
	if err != nil {
		return nil, err
	}

	reg := xsettings.NewRegistry()
	reg.Configure(c.defaults, c.required, true)

	logErr := xsettings.LogErrorHandler(func() xlog.Logger { return c.logger })

	return xsettings.NewSettings(
		src,
		reg,
		xsettings.SettingsWithErrorHandler(func(err error) {
			c.reported = true
			logErr(err)
		}),
	), nil
}

// parseAliases turns KEY=FORMER_KEY flag values into aliases,
// grouping the former keys of the same key in flag order.
func parseAliases(flagValues []string) ([]xsettings.Alias, error) {
	var aliases []xsettings.Alias
	index := make(map[string]int, len(flagValues))
	for _, flagValue := range flagValues {
		key, former, found := strings.Cut(flagValue, "=")
		key, former = strings.TrimSpace(key), strings.TrimSpace(former)
		if !found || key == "" || former == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidAliasFlag, flagValue)
		}
		if idx, seen := index[key]; seen {
			aliases[idx].Former = append(aliases[idx].Former, former)

			continue
		}
		index[key] = len(aliases)
		aliases = append(aliases, xsettings.Alias{Key: key, Former: []string{former}})
	}

	return aliases, nil
}

func getValue(settings *xsettings.Settings, key, valueType string, defs []string) (any, error) {
	switch valueType {
	case typeString:
		return settings.String(key, defs...)
	case typeExt:
		return settings.FileExtensions(key, defs...)
	case typeBool:
		boolDefs, err := parseDefaults(defs, func(def string) (bool, error) { return cast.ToBoolE(def) })
		if err != nil {
			return nil, err
		}

		return settings.Bool(key, boolDefs...)
	case typeInt:
		intDefs, err := parseDefaults(defs, strconv.Atoi)
		if err != nil {
			return nil, err
		}

		return settings.Int(key, intDefs...)
	case typeUUID:
		uuidDefs, err := parseDefaults(defs, uuid.Parse)
		if err != nil {
			return nil, err
		}

		return settings.UUID(key, uuidDefs...)
	}

	return nil, fmt.Errorf("%w: %q", errUnknownValueType, valueType)
}

// parseDefaults converts the --default flag value to the requested type.
func parseDefaults[T any](defs []string, parse func(string) (T, error)) ([]T, error) {
	parsed := make([]T, 0, len(defs))
	for _, def := range defs {
		value, err := parse(strings.TrimSpace(def))
		if err != nil {
			return nil, fmt.Errorf("invalid default %q: %w", def, err)
		}
		parsed = append(parsed, value)
	}

	return parsed, nil
}
