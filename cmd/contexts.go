package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
)

func init() {
	rootCmd.AddCommand(contextsCmd)
}

var contextsCmd = &cobra.Command{
	Use:   "contexts [path]",
	Short: "List the theme contexts detected in a workspace",
	Long: `List the class-selector contexts (such as .light or .dark) that contain color definitions.
Each of them can be used as a resolution mode.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scanWorkspace(cmd, args)
		handleErr(err)

		contexts := s.registry.DetectedContexts()
		if len(contexts) == 0 {
			cmd.Println(style.Faint("no contexts, every definition is global"))
			return
		}

		for _, c := range contexts {
			mark := " "
			if c == s.registry.Mode() {
				mark = style.Fg(color.Green)(icon.Get(icon.Mark))
			}
			cmd.Printf("%s %s\n", mark, c)
		}
	},
}
