package cmd

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolP("watch", "w", false, "Keep the browser current as files change")
}

var browseCmd = &cobra.Command{
	Use:     "browse [path]",
	Short:   "Browse the workspace colors interactively",
	Aliases: []string{"tui"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, mode, err := openWorkspace(cmd, args)
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Workspace: ws,
			Mode:      mode,
			Watch:     lo.Must(cmd.Flags().GetBool("watch")),
			Debounce:  time.Duration(viper.GetInt(key.WatchDebounceMs)) * time.Millisecond,
		}))
	},
}
