package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/util"
	"github.com/tintscan/tintscan/workspace"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("clear", false, "Clear the screen before every report")
	watchCmd.Flags().Int("debounce", 0, "Delay in milliseconds before a change triggers a rebuild")
	lo.Must0(viper.BindPFlag(key.WatchDebounceMs, watchCmd.Flags().Lookup("debounce")))
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rebuild the registry whenever a source file changes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scanWorkspace(cmd, args)
		handleErr(err)

		clearScreen := lo.Must(cmd.Flags().GetBool("clear"))
		report := func(result workspace.Result) {
			if clearScreen {
				util.ClearScreen()
			}
			printSummary(cmd, &session{workspace: s.workspace, registry: s.registry, result: result})
		}
		report(s.result)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("%s watching %s\n", style.Fg(color.Purple)(icon.Get(icon.Watch)), s.workspace.Root())

		debounce := time.Duration(viper.GetInt(key.WatchDebounceMs)) * time.Millisecond
		handleErr(s.workspace.Watch(ctx, s.registry.Mode(), debounce, func(result workspace.Result, err error) {
			if err != nil {
				cmd.PrintErrf("%s %v\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
				return
			}
			report(result)
		}))
	},
}
