package constant

// Resolution modes and the context sentinel shared by the registry and the CLI.
const (
	// ModeAuto selects the most recently defined color for every variable.
	ModeAuto = "auto"

	// GlobalContext is attributed to definitions found outside any tracked class scope.
	GlobalContext = "global"
)
