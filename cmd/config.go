// Package cmd implements the anidb command-line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/config"
	"github.com/anisan-cli/anidb/icon"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/style"
	"github.com/anisan-cli/anidb/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := util.Closest(key, lo.Keys(config.Default)).OrEmpty()
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// maskKeyTable returns the table a mask config key is parsed against.
func maskKeyTable(key string) (*mask.Table, bool) {
	for _, k := range kinds {
		if i := lo.IndexOf(k.defaults, key); i >= 0 {
			return k.tables[i], true
		}
	}
	return nil, false
}

// configKey takes the key from the first argument or from --key.
func configKey(cmd *cobra.Command, args []string) (string, error) {
	key := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		key = args[0]
	}

	if key == "" {
		return "", errors.New("key is required as an argument or --key flag")
	}

	if _, ok := config.Default[key]; !ok {
		return "", errUnknownKey(key)
	}

	return key, nil
}

// parseConfigValue converts raw to the type of the key's default.
// Masks are normalized to their canonical hex.
func parseConfigValue(key string, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required as an argument or --value flag")
	}

	switch config.Default[key].Value.(type) {
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s takes an integer: %w", key, err)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s takes a boolean: %w", key, err)
		}
		return b, nil
	case []string:
		return raw, nil
	}

	if t, ok := maskKeyTable(key); ok {
		m, err := t.Parse(raw[0])
		if err != nil {
			return nil, err
		}
		return m.Hex(), nil
	}

	return raw[0], nil
}

func writeConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfig()
	}
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the default masks and output settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe, all when omitted")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
		}
		slices.Sort(keys)

		fields := make([]config.Field, 0, len(keys))
		for _, key := range keys {
			field, ok := config.Default[key]
			if !ok {
				handleErr(errUnknownKey(key))
			}
			fields = append(fields, field)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())
			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to read")
	configGetCmd.Flags().BoolP("fields", "f", false, "List the fields a mask key selects")
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a key",
	Example:           "  anidb config get anidb.fmask --fields",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := configKey(cmd, args)
		handleErr(err)

		t, isMask := maskKeyTable(key)
		if !lo.Must(cmd.Flags().GetBool("fields")) {
			cmd.Println(viper.Get(key))
			return
		}

		if !isMask {
			handleErr(fmt.Errorf("%s is not a mask", key))
		}

		m, err := config.Mask(key, t)
		handleErr(err)

		ids := lo.Map(slices.Collect(m.Fields()), func(f mask.Field, _ int) string { return f.ID })

		cmd.Printf("%s %s\n", style.Bold(m.Hex()), style.Faint(util.Quantify(len(ids), "field", "fields")))
		cmd.Println(strings.Join(ids, "\n"))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a key",
	Example:           "  anidb config set anidb.amask 80800000000000",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := configKey(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		v, err := parseConfigValue(key, raw)
		handleErr(err)

		viper.Set(key, v)
		handleErr(writeConfig())

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprint(v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "The key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	lo.Must0(configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore keys to their defaults",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var keys []string
		if lo.Must(cmd.Flags().GetBool("all")) {
			keys = lo.Keys(config.Default)
		} else {
			key, err := configKey(cmd, args)
			handleErr(err)
			keys = []string{key}
		}

		for _, key := range keys {
			viper.Set(key, config.Default[key].Value)
		}
		handleErr(writeConfig())

		fmt.Printf(
			"%s reset %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(lo.Ternary(len(keys) == 1, keys[0], "all keys")),
		)
	},
}
