package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/util"
)

// ScanMode selects whether a scan starts from an empty registry.
type ScanMode int

const (
	// ScanReplace clears the registry, then scans. Other files' contributions are discarded.
	ScanReplace ScanMode = iota
	// ScanMerge scans into the existing registry, one file of a batch started with ClearAll.
	ScanMerge
)

func (m ScanMode) String() string {
	switch m {
	case ScanReplace:
		return "replace"
	case ScanMerge:
		return "merge"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

var (
	contextOpener = regexp.MustCompile(`\.([A-Za-z0-9_-]+)\s*\{`)
	definition    = regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:\s*([^;]+);`)
)

// scope is an open class-selector block and the brace depth it was opened at.
type scope struct {
	name  string
	depth int
}

// scanner holds the per-pass state: brace depth and the stack of open scopes.
type scanner struct {
	registry *Registry
	depth    int
	scopes   util.Stack[scope]
	lineNo   int
}

// Scan feeds one file's full text into the registry.
func (r *Registry) Scan(content string, mode ScanMode) {
	if mode == ScanReplace {
		r.ClearAll()
	}

	before := r.definitions
	s := &scanner{registry: r}
	for _, line := range strings.Split(content, "\n") {
		s.lineNo++
		s.line(strings.TrimSuffix(line, "\r"))
	}

	log.WithFields(log.DebugLevel, log.Fields{
		"mode":        mode.String(),
		"lines":       s.lineNo,
		"definitions": r.definitions - before,
		"unclosed":    s.scopes.Len(),
	}, "scanned content")
}

// line runs one step of the state machine. A panic while handling a line only skips that line.
func (s *scanner) line(text string) {
	defer func() {
		if err := recover(); err != nil {
			log.Debugf("skipping line %d: %v", s.lineNo, err)
		}
	}()

	if name, ok := s.opener(text); ok {
		s.registry.contexts[name] = struct{}{}
		s.scopes.Push(scope{name: name, depth: s.depth})
	}

	context := constant.GlobalContext
	if s.scopes.Len() > 0 {
		context = s.scopes.Peek().name
	}

	for _, match := range definition.FindAllStringSubmatch(text, -1) {
		parsed, ok := color.Parse(match[2]).Get()
		if !ok {
			log.Tracef("line %d: %s is not a channel value", s.lineNo, match[1])
			continue
		}
		s.registry.define(match[1], context, parsed)
	}

	s.depth += strings.Count(text, "{")
	for range strings.Count(text, "}") {
		if s.depth > 0 {
			s.depth--
		}
		for s.scopes.Len() > 0 && s.scopes.Peek().depth >= s.depth {
			s.scopes.Pop()
		}
	}
}

// opener reports the class name when the line opens a single-class selector block.
// A line with more than one '.' anywhere is never an opener.
func (s *scanner) opener(text string) (string, bool) {
	if strings.Count(text, ".") != 1 {
		return "", false
	}

	match := contextOpener.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	return match[1], true
}
