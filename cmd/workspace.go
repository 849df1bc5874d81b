package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/config"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/history"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/registry"
	"github.com/tintscan/tintscan/workspace"
)

// session is a scanned workspace ready to be queried.
type session struct {
	workspace *workspace.Workspace
	registry  *registry.Registry
	result    workspace.Result
}

// workspaceDir returns the directory given as the first argument, or the --dir flag.
func workspaceDir(cmd *cobra.Command, args []string) (string, error) {
	dir := lo.Must(cmd.Flags().GetString("dir"))
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	info, err := filesystem.API().Stat(abs)
	if err != nil {
		return "", fmt.Errorf("workspace %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace %s: not a directory", dir)
	}

	return abs, nil
}

// resolveMode picks the resolution mode: the --mode flag, then the mode remembered for the
// workspace, then the configured default.
func resolveMode(cmd *cobra.Command, root string) string {
	if cmd.Flags().Changed("mode") {
		return strings.TrimPrefix(lo.Must(cmd.Flags().GetString("mode")), ".")
	}

	if viper.GetBool(key.HistoryRememberMode) {
		if mode, ok := history.Mode(root).Get(); ok {
			return mode
		}
	}

	return viper.GetString(key.ScanMode)
}

// openWorkspace merges the project configuration of the workspace and prepares it without scanning.
func openWorkspace(cmd *cobra.Command, args []string) (*workspace.Workspace, string, error) {
	root, err := workspaceDir(cmd, args)
	if err != nil {
		return nil, "", err
	}

	if err := config.MergeProject(root); err != nil {
		return nil, "", err
	}

	categories := viper.GetStringSlice(key.ScanCategories)
	if unknown, ok := lo.Find(categories, func(c string) bool {
		return !lo.Contains(workspace.CategoryNames(), c)
	}); ok {
		return nil, "", fmt.Errorf("unknown category %s, available: %s", unknown, strings.Join(workspace.CategoryNames(), ", "))
	}

	ws := workspace.New(root, registry.New(), workspace.Options{
		Categories: categories,
		Ignore:     viper.GetStringSlice(key.ScanIgnore),
	})

	return ws, resolveMode(cmd, root), nil
}

// scanWorkspace opens and scans the workspace, remembering the outcome.
func scanWorkspace(cmd *cobra.Command, args []string) (*session, error) {
	ws, mode, err := openWorkspace(cmd, args)
	if err != nil {
		return nil, err
	}

	result, err := ws.Rebuild(mode)
	if err != nil {
		return nil, err
	}

	if result.Files == 0 {
		log.Warnf("no definition sources under %s", ws.Root())
	}

	reg := ws.Registry()
	if err := history.SaveScan(ws.Root(), result.Files, result.Stats.Variables, reg.DetectedContexts()); err != nil {
		log.Warnf("save history: %v", err)
	}

	return &session{workspace: ws, registry: reg, result: result}, nil
}

func completionModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := []string{constant.ModeAuto}

	root, err := workspaceDir(cmd, nil)
	if err == nil {
		if record, ok := history.Lookup(root).Get(); ok {
			modes = append(modes, record.Contexts...)
		}
	}

	return modes, cobra.ShellCompDirectiveNoFileComp
}
