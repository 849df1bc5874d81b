package history

import (
	"fmt"
	"time"
)

// Record is what is remembered about one workspace.
type Record struct {
	Root string `json:"root"`
	// Mode is the resolution mode last chosen for the workspace.
	Mode string `json:"mode,omitempty"`

	Files     int       `json:"files"`
	Variables int       `json:"variables"`
	Contexts  []string  `json:"contexts"`
	ScannedAt time.Time `json:"scanned_at"`
}

func (r *Record) String() string {
	mode := r.Mode
	if mode == "" {
		mode = "auto"
	}
	return fmt.Sprintf("%s : %s, %d variables", r.Root, mode, r.Variables)
}
