package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/locate"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/workspace"
)

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().BoolP("only-colored", "o", false, "Print only lines containing a resolved color")
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Print a file with a color swatch next to every resolved variable and class",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := filesystem.API().ReadFile(args[0])
		handleErr(err)

		s, err := scanWorkspace(cmd, nil)
		handleErr(err)

		category, ok := workspace.CategoryOf(args[0], workspace.CategoryNames()).Get()
		classes := ok && category.Classes
		onlyColored := lo.Must(cmd.Flags().GetBool("only-colored"))

		resolver := locate.NewResolver(s.registry)
		lines := strings.Split(string(content), "\n")
		gutter := len(fmt.Sprint(len(lines)))

		for i, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			resolved := resolver.Line(line, classes)
			if onlyColored && len(resolved) == 0 {
				continue
			}

			cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%*d", gutter, i+1)), annotateLine(line, resolved))
		}
	},
}

// annotateLine inserts a swatch right after every resolved span.
func annotateLine(line string, resolved []locate.Resolved) string {
	var (
		b    strings.Builder
		last int
	)

	renderer := swatch.Default()
	for _, r := range resolved {
		if r.End < last {
			continue
		}
		b.WriteString(line[last:r.End])
		b.WriteString(renderer.Block(r.Color))
		last = r.End
	}
	b.WriteString(line[last:])

	return b.String()
}
