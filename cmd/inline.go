package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/config"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/inline"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/query"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("variables", "V", "", "Select which variables to report")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("breakdown", "b", false, "Include the color of every context")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("variables", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline [path]",
	Short: "Report the workspace colors in a scriptable format",
	Long: `Scan a workspace and report its variables without any decoration.

Variable selectors:
  all     - every variable
  @text@  - variables whose name contains text
  --bg-*  - variables matching a shell pattern
  --bg    - a single variable

Without a selector every variable is reported.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := workspaceDir(cmd, args)
		handleErr(err)
		handleErr(config.MergeProject(root))

		filter := mo.None[inline.VariableFilter]()
		if selector := lo.Must(cmd.Flags().GetString("variables")); selector != "" {
			fn, err := inline.ParseVariableFilter(selector)
			handleErr(err)
			filter = mo.Some(fn)
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		handleErr(inline.Run(&inline.Options{
			Out:        writer,
			Root:       root,
			Mode:       resolveMode(cmd, root),
			Categories: viper.GetStringSlice(key.ScanCategories),
			Ignore:     viper.GetStringSlice(key.ScanIgnore),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Breakdown:  lo.Must(cmd.Flags().GetBool("breakdown")),
			Filter:     filter,
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline report",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "color", "stats", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
