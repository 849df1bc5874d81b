// Package inline provides the non-interactive, scriptable report mode.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/registry"
	"github.com/tintscan/tintscan/workspace"
)

// Run scans the workspace and writes the report to options.Out.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	reg := registry.New()
	ws := workspace.New(options.Root, reg, workspace.Options{
		Categories: options.Categories,
		Ignore:     options.Ignore,
	})

	result, err := ws.Rebuild(options.Mode)
	if err != nil {
		return err
	}

	output := report(ws.Root(), reg, result, options)
	log.Infof("inline report: %d variables in %s", len(output.Variables), output.Root)

	if options.Json {
		return writeJson(options.Out, output)
	}

	return writePlain(options.Out, output)
}

func report(root string, reg *registry.Registry, result workspace.Result, options *Options) *Output {
	output := &Output{
		Root:     root,
		Mode:     reg.Mode(),
		Contexts: reg.DetectedContexts(),
		Stats: Stats{
			Files:       result.Files,
			Skipped:     result.Skipped,
			Variables:   result.Stats.Variables,
			Contexts:    result.Stats.Contexts,
			Definitions: result.Stats.Definitions,
		},
		Variables: []Variable{},
	}

	if output.Contexts == nil {
		output.Contexts = []string{}
	}

	for _, name := range reg.Variables() {
		if filter, ok := options.Filter.Get(); ok && !filter(name) {
			continue
		}

		c, ok := reg.ActiveColor(name).Get()
		if !ok {
			continue
		}

		v := Variable{Name: name, Color: newColor(c)}
		if options.Breakdown {
			v.Contexts = breakdown(reg, name)
		}
		output.Variables = append(output.Variables, v)
	}

	return output
}

func writeJson(out io.Writer, output *Output) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writePlain prints one "name rgba" line per variable, followed by its contexts when requested.
func writePlain(out io.Writer, output *Output) error {
	for _, v := range output.Variables {
		if _, err := fmt.Fprintf(out, "%s %s\n", v.Name, v.Color.RGBA); err != nil {
			return err
		}
		for _, c := range v.Contexts {
			if _, err := fmt.Fprintf(out, "  %s %s\n", c.Context, c.Color.RGBA); err != nil {
				return err
			}
		}
	}
	return nil
}
