package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/query"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolP("all", "a", false, "Show the color of every context")
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <variable>",
	Short: "Show the active color of a variable and its per-context breakdown",
	Example: `  tintscan lookup --primary
  tintscan lookup primary --mode dark`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}

		s, err := scanWorkspace(cmd, nil)
		handleErr(err)

		c, ok := s.registry.ActiveColor(name).Get()
		if !ok {
			msg := fmt.Sprintf("unknown variable %s", style.Fg(color.Red)(name))
			if closest, ok := query.DidYouMean(name, s.registry.Variables()).Get(); ok {
				msg += fmt.Sprintf(", %s did you mean %s?", icon.Get(icon.Search), style.Fg(color.Yellow)(closest))
			}
			handleErr(errors.New(msg))
		}

		if err := query.Remember(name, 1); err != nil {
			handleErr(err)
		}

		renderer := swatch.Default()
		cmd.Printf("%s %s\n", renderer.Chip(c), style.Bold(name))
		cmd.Printf("  %s %s\n", style.Faint("mode"), s.registry.Mode())
		cmd.Printf("  %s %s\n", style.Faint("rgba"), c.RGBA())
		cmd.Printf("  %s  %s\n", style.Faint("hex"), c.Hex())

		breakdown := s.registry.ContextBreakdown(name)
		if len(breakdown) < 2 && !lo.Must(cmd.Flags().GetBool("all")) {
			return
		}

		cmd.Println()
		for _, cc := range breakdown {
			mark := " "
			if color.Same(cc.Color, c) {
				mark = icon.Get(icon.Mark)
			}
			cmd.Printf("%s %s %s %s\n", mark, renderer.Block(cc.Color), style.Fg(color.Cyan)(cc.Context), style.Faint(cc.Color.RGBA()))
		}
	},
}
