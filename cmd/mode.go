package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/history"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
)

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.Flags().BoolP("forget", "f", false, "Forget the remembered mode of the workspace")
}

var modeCmd = &cobra.Command{
	Use:   "mode [name]",
	Short: "Remember the resolution mode of a workspace",
	Long: `Remember the resolution mode used for a workspace when --mode is not given.
Without a name, pick one of the detected contexts interactively.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completionModes(cmd, args, toComplete)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("forget")) {
			root, err := workspaceDir(cmd, nil)
			handleErr(err)
			handleErr(history.Remove(root))
			cmd.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), root)
			return
		}

		s, err := scanWorkspace(cmd, nil)
		handleErr(err)

		modes := append([]string{constant.ModeAuto}, s.registry.DetectedContexts()...)

		var mode string
		if len(args) == 1 {
			mode = strings.TrimPrefix(args[0], ".")
			if !lo.Contains(modes, mode) {
				handleErr(errUnknownMode(mode, modes))
			}
		} else {
			handleErr(survey.AskOne(&survey.Select{
				Message: "Resolution mode",
				Options: modes,
				Default: lo.Ternary(lo.Contains(modes, s.registry.Mode()), s.registry.Mode(), constant.ModeAuto),
			}, &mode))
		}

		handleErr(history.SaveMode(s.workspace.Root(), mode))
		cmd.Printf(
			"%s %s will use mode %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			s.workspace.Root(),
			style.Fg(color.Yellow)(mode),
		)
	},
}

func errUnknownMode(mode string, modes []string) error {
	closest := lo.MinBy(modes, func(a, b string) bool {
		return levenshtein.Distance(mode, a) < levenshtein.Distance(mode, b)
	})

	return fmt.Errorf(
		"unknown mode %s, did you mean %s?",
		style.Fg(color.Red)(mode),
		style.Fg(color.Yellow)(closest),
	)
}
