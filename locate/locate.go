// Package locate finds variable references, variable definitions, and Tailwind color classes in a
// line of source text and maps a byte offset to the one it falls in.
package locate

import (
	"regexp"
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tintscan/tintscan/tailwind"
)

// Kind classifies a span.
type Kind int

const (
	// VarUsage is var(--name, possibly wrapped in rgb(a)/hsl(a).
	VarUsage Kind = iota
	// DefinitionName is the --name part of a --name: value; definition.
	DefinitionName
	// DefinitionValue is the value part of a definition.
	DefinitionValue
	// ClassUsage is a Tailwind color utility class.
	ClassUsage
)

func (k Kind) String() string {
	switch k {
	case VarUsage:
		return "var"
	case DefinitionName:
		return "definition"
	case DefinitionValue:
		return "value"
	case ClassUsage:
		return "class"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) of a line attributed to a variable or class.
type Span struct {
	Kind  Kind
	Name  string
	Start int
	End   int
	// Text is the matched source text.
	Text string
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// ClassHit is a word classified as a Tailwind color class.
type ClassHit struct {
	Span
	Class tailwind.Class
}

var (
	usagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`rgba?\(\s*var\(\s*(--[A-Za-z0-9_-]+)`),
		regexp.MustCompile(`hsla?\(\s*var\(\s*(--[A-Za-z0-9_-]+)`),
		regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`),
	}
	definitionPattern = regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:\s*([^;]+);`)
	wordPattern       = regexp.MustCompile(`[A-Za-z0-9_-]+`)
	classTokenPattern = regexp.MustCompile(`[A-Za-z0-9_:/-]+`)
)

// VariableAt returns the variable span enclosing offset, trying usage grammars first and then
// the definition name and value.
func VariableAt(line string, offset int) mo.Option[Span] {
	for _, span := range variableSpans(line) {
		if span.Contains(offset) {
			return mo.Some(span)
		}
	}
	return mo.None[Span]()
}

// variableSpans lists usage spans (wrapped forms before bare var) followed by definition spans.
func variableSpans(line string) []Span {
	var spans []Span

	for _, pattern := range usagePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(line, -1) {
			spans = append(spans, Span{
				Kind:  VarUsage,
				Name:  line[m[2]:m[3]],
				Start: m[0],
				End:   m[1],
				Text:  line[m[0]:m[1]],
			})
		}
	}

	for _, m := range definitionPattern.FindAllStringSubmatchIndex(line, -1) {
		name := line[m[2]:m[3]]
		spans = append(spans,
			Span{Kind: DefinitionName, Name: name, Start: m[2], End: m[3], Text: name},
			Span{Kind: DefinitionValue, Name: name, Start: m[4], End: m[5], Text: line[m[4]:m[5]]},
		)
	}

	return spans
}

// WordAt returns the maximal run of letters, digits, '-' and '_' around offset.
func WordAt(line string, offset int) mo.Option[Span] {
	for _, m := range wordPattern.FindAllStringIndex(line, -1) {
		if offset >= m[0] && offset < m[1] {
			return mo.Some(Span{Kind: ClassUsage, Name: line[m[0]:m[1]], Start: m[0], End: m[1], Text: line[m[0]:m[1]]})
		}
	}
	return mo.None[Span]()
}

// ClassAt classifies the word at offset as a Tailwind color class. The span's Name is the color name.
func ClassAt(line string, offset int) mo.Option[ClassHit] {
	word, ok := WordAt(line, offset).Get()
	if !ok {
		return mo.None[ClassHit]()
	}

	class, ok := tailwind.ParseClass(word.Text).Get()
	if !ok {
		return mo.None[ClassHit]()
	}

	word.Name = class.ColorName
	return mo.Some(ClassHit{Span: word, Class: class})
}

// Usages lists every variable usage and definition on a line and, when classes is set, every
// token that parses as a Tailwind color class. Spans are ordered by start offset.
func Usages(line string, classes bool) []Span {
	spans := variableSpans(line)

	// rgba(var(--x) and var(--x) describe the same reference; keep the outer one.
	spans = lo.Filter(spans, func(s Span, _ int) bool {
		if s.Kind != VarUsage {
			return true
		}
		return !lo.ContainsBy(spans, func(o Span) bool {
			return o.Kind == VarUsage && o.Start < s.Start && o.End == s.End
		})
	})

	if classes {
		for _, m := range classTokenPattern.FindAllStringIndex(line, -1) {
			token := line[m[0]:m[1]]
			class, ok := tailwind.ParseClass(token).Get()
			if !ok {
				continue
			}
			spans = append(spans, Span{Kind: ClassUsage, Name: class.ColorName, Start: m[0], End: m[1], Text: token})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	return spans
}
