package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/tailwind"
)

func init() {
	rootCmd.AddCommand(classCmd)
}

var classCmd = &cobra.Command{
	Use:   "class <class>...",
	Short: "Resolve Tailwind color classes against the workspace",
	Long: `Resolve Tailwind color utility classes such as bg-primary or hover:text-sky-500/50.

A class resolves to the workspace variable of the same name first and to the
standard Tailwind palette otherwise.`,
	Example: "  tintscan class bg-primary dark:text-slate-200",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scanWorkspace(cmd, nil)
		handleErr(err)

		resolver := &tailwind.Resolver{}
		renderer := swatch.Default()

		for _, token := range args {
			class, ok := tailwind.ParseClass(token).Get()
			if !ok {
				cmd.Printf("%s %s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), token, style.Faint("not a color class"))
				continue
			}

			c, ok := resolver.Resolve(class.ColorName, s.registry.Active()).Get()
			if !ok {
				cmd.Printf("%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), token, style.Faint("unresolved color "+class.ColorName))
				continue
			}

			cmd.Printf(
				"%s %s %s %s\n",
				renderer.Chip(c),
				style.Bold(token),
				style.Fg(color.Cyan)(icon.Get(icon.Class)+" "+class.Prefix+" "+class.ColorName),
				style.Faint(c.RGBA()),
			)
		}
	},
}
