package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/locate"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/util"
	"github.com/tintscan/tintscan/workspace"
)

func init() {
	rootCmd.AddCommand(atCmd)
}

var atCmd = &cobra.Command{
	Use:   "at <file> <line> <column>",
	Short: "Describe the color variable or class at a position in a file",
	Long: `Describe the color variable or Tailwind class found at a 1-based line and column of a file,
the way an editor hover would.`,
	Example: "  tintscan at src/app.css 12 18",
	Args:    cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		lineNo, err := strconv.Atoi(args[1])
		if err != nil || lineNo < 1 {
			handleErr(fmt.Errorf("invalid line %q", args[1]))
		}

		column, err := strconv.Atoi(args[2])
		if err != nil || column < 1 {
			handleErr(fmt.Errorf("invalid column %q", args[2]))
		}

		line, err := readLine(args[0], lineNo)
		handleErr(err)

		s, err := scanWorkspace(cmd, nil)
		handleErr(err)

		category := workspace.CategoryOf(args[0], workspace.CategoryNames())
		classes := category.IsPresent() && category.MustGet().Classes

		span, ok := spanAt(line, byteOffset(line, column-1), classes).Get()
		if !ok {
			cmd.Println(style.Faint("nothing to describe here"))
			return
		}

		cmd.Println(wordwrap.String(describe(s, span), util.TerminalWidth(80)))
	},
}

// readLine returns the 1-based line of a file.
func readLine(path string, lineNo int) (string, error) {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if n == lineNo {
			return strings.TrimSuffix(scanner.Text(), "\r"), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%s has no line %d", path, lineNo)
}

// byteOffset converts a 0-based character column to a byte offset of line.
func byteOffset(line string, column int) int {
	for i := range line {
		if column == 0 {
			return i
		}
		column--
	}
	return len(line)
}

// spanAt prefers variables over classes.
func spanAt(line string, offset int, classes bool) mo.Option[locate.Span] {
	if span, ok := locate.VariableAt(line, offset).Get(); ok {
		return mo.Some(span)
	}

	if classes {
		if hit, ok := locate.ClassAt(line, offset).Get(); ok {
			return mo.Some(hit.Span)
		}
	}

	return mo.None[locate.Span]()
}

func describe(s *session, span locate.Span) string {
	var b strings.Builder

	renderer := swatch.Default()
	resolver := locate.NewResolver(s.registry)

	fmt.Fprintf(&b, "%s %s\n", style.Bold(span.Text), style.Faint("("+span.Kind.String()+")"))

	c, ok := resolver.Color(span).Get()
	if !ok {
		fmt.Fprintf(&b, "%s %s is not defined in any scanned file\n", style.Fg(color.Red)("unresolved:"), span.Name)
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s %s\n", renderer.Chip(c), c.RGBA(), style.Faint("mode "+s.registry.Mode()))

	if span.Kind == locate.ClassUsage || span.Kind == locate.DefinitionValue {
		return b.String()
	}

	breakdown := s.registry.ContextBreakdown(span.Name)
	if len(breakdown) > 1 {
		b.WriteString("\n")
		for _, cc := range breakdown {
			fmt.Fprintf(&b, "%s %s %s\n", renderer.Block(cc.Color), style.Fg(color.Cyan)(cc.Context), style.Faint(cc.Color.RGBA()))
		}
	}

	return b.String()
}
