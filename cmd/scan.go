package cmd

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/util"
)

func scanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("breakdown", "b", false, "Show the color of every context next to each variable")
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanFlags(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a workspace and list its color variables",
	Long: `Scan every definition source of a workspace and list the active color of each variable.

The active color depends on the resolution mode:
  auto   - the last definition found wins
  [name] - the definition inside .name { } wins, falling back to the global one`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scanWorkspace(cmd, args)
		handleErr(err)

		printSummary(cmd, s)

		breakdown := lo.Must(cmd.Flags().GetBool("breakdown"))
		renderer := swatch.Default()

		names := s.registry.Variables()
		width := lo.Max(lo.Map(names, func(n string, _ int) int { return len(n) }))

		for _, name := range names {
			c, ok := s.registry.ActiveColor(name).Get()
			if !ok {
				continue
			}

			cmd.Printf("%s %-*s %s\n", renderer.Block(c), width, name, style.Faint(c.RGBA()))

			if !breakdown {
				continue
			}

			for _, cc := range s.registry.ContextBreakdown(name) {
				cmd.Printf("  %s %s %s\n", renderer.Block(cc.Color), style.Fg(color.Cyan)(cc.Context), style.Faint(cc.Color.RGBA()))
			}
		}
	},
}

func printSummary(cmd *cobra.Command, s *session) {
	r := s.result
	cmd.Printf(
		"%s %s %s in %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		icon.Get(icon.Variable),
		util.Quantify(r.Stats.Variables, "variable", "variables"),
		util.Quantify(r.Files, "file", "files"),
		style.Faint(fmt.Sprintf("(%s, mode %s)", r.Duration.Round(time.Millisecond), s.registry.Mode())),
	)

	if r.Skipped > 0 {
		cmd.Printf("%s %s could not be read\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), util.Quantify(r.Skipped, "file", "files"))
	}

	if contexts := s.registry.DetectedContexts(); len(contexts) > 0 {
		cmd.Printf("%s %s\n", style.Fg(color.Purple)(icon.Get(icon.Context)), joinContexts(contexts))
	}

	cmd.Println()
}

func joinContexts(contexts []string) string {
	return lo.Reduce(contexts, func(acc string, c string, i int) string {
		if i > 0 {
			acc += ", "
		}
		return acc + style.Fg(color.Cyan)(c)
	}, "")
}
