// Package open hands files and URLs to the platform's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tintscan/tintscan/constant"
)

// Start opens target with app, or with the default handler when app is empty, without waiting.
func Start(target, app string) error {
	cmd, err := Command(runtime.GOOS, target, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the command that opens target on goos.
func Command(goos, target, app string) (*exec.Cmd, error) {
	if app != "" {
		return commandWith(goos, target, app)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

func commandWith(goos, target, app string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(target, "&", "^&")), nil
	case constant.Darwin:
		return exec.Command("open", "-a", app, target), nil
	case constant.Linux, constant.Android:
		return exec.Command(app, target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
