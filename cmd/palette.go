package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/tailwind"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette [family]...",
	Short: "Print the standard Tailwind palette used as the fallback for classes",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tailwind.Families(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		families := args
		if len(families) == 0 {
			families = tailwind.Families()
		}

		renderer := swatch.Default()
		cmd.Printf("%s %s\n\n", icon.Get(icon.Swatch), style.Header("tailwind"))

		for _, family := range families {
			shades := tailwind.Shades(family)
			if len(shades) == 0 {
				handleErr(fmt.Errorf("unknown palette family %s", family))
			}

			var row strings.Builder
			for _, shade := range shades {
				row.WriteString(renderer.Block(tailwind.Standard(family, shade).MustGet()))
			}

			cmd.Printf("%-8s %s %s\n", family, row.String(), style.Faint(shades[0]+"-"+shades[len(shades)-1]))
		}
	},
}
