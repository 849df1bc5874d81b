// Package cmd implements the command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/version"
	"github.com/tintscan/tintscan/workspace"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Workspace directory to scan")

	rootCmd.PersistentFlags().StringP("mode", "m", "", "Resolution mode: auto or a context name such as light or dark")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("mode", completionModes))

	rootCmd.PersistentFlags().StringSliceP("category", "C", nil, "Enabled source-file categories")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return workspace.CategoryNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ScanCategories, rootCmd.PersistentFlags().Lookup("category")))

	rootCmd.PersistentFlags().StringSlice("ignore", nil, "Directory names skipped during discovery")
	lo.Must0(viper.BindPFlag(key.ScanIgnore, rootCmd.PersistentFlags().Lookup("ignore")))

	scanFlags(rootCmd)
	rootCmd.SetOut(os.Stdout)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Tintscan + " [path]",
	Short: "Resolve CSS custom-property and Tailwind colors across light and dark themes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve CSS custom-property and Tailwind colors across light and dark themes"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		scanCmd.Run(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
