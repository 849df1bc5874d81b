package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/config"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/open"
	"github.com/tintscan/tintscan/style"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// writeUserConfig persists the in-memory configuration, creating the file on first use.
func writeUserConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

func requireKey(key string) {
	if _, ok := config.Default[key]; !ok {
		handleErr(errUnknownKey(key))
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "print as json")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings, their current values and defaults",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field {
				requireKey(k)
				return config.Default[k]
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(fields))
			return
		}

		for i := range fields {
			cmd.Print(fields[i].Pretty())

			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().Bool("project", false, "write to the project file of the workspace instead of the user config")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>...",
	Short: "Change a setting",
	Long: `Change a setting. List settings accept several values or a comma separated one.
With --project the value is written to the .tintscan.toml file of the workspace
given by --dir and only applies there.`,
	Example:           "  tintscan config set scan.mode dark\n  tintscan config set scan.categories css,vue --project",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		requireKey(key)

		value, err := config.Parse(key, args[1:])
		handleErr(err)

		target := config.File()
		if lo.Must(cmd.Flags().GetBool("project")) {
			dir, err := workspaceDir(cmd, nil)
			handleErr(err)
			handleErr(config.SetProject(dir, key, value))
			target = dir
		} else {
			viper.Set(key, value)
			handleErr(writeUserConfig())
		}

		cmd.Printf(
			"%s set %s to %s in %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
			target,
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		requireKey(args[0])
		cmd.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the user config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.File()

		if lo.Must(cmd.Flags().GetBool("force")) {
			err := filesystem.API().Remove(path)
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf(
			"%s wrote config to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			path,
		)
	},
}

func init() {
	configCmd.AddCommand(configOpenCmd)
	configOpenCmd.Flags().String("app", "", "open with this application instead of the default one")
}

var configOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the user config file, writing it first if missing",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.File()

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if !exists {
			handleErr(viper.SafeWriteConfig())
		}

		handleErr(open.Start(path, lo.Must(cmd.Flags().GetString("app"))))
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the user config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(config.File()))
		cmd.Printf(
			"%s deleted config\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "setting to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "restore every setting")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeUserConfig())

			cmd.Printf("%s reset all settings\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		key := lo.Must(cmd.Flags().GetString("key"))
		requireKey(key)

		viper.Set(key, config.Default[key].Value)
		handleErr(writeUserConfig())

		cmd.Printf(
			"%s reset %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprint(config.Default[key].Value)),
		)
	},
}
