package subdiv

import (
	"fmt"
	"io"
	"os"
)

// Debug logging infrastructure for the DCEL builder.
var (
	// Debug enables detailed debug logging when true.
	Debug = false
	// DebugOutput is where debug output goes (default: os.Stderr).
	DebugOutput io.Writer = os.Stderr
)

// debugLog prints a debug message if Debug is enabled.
func debugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[BUILD] "+format+"\n", args...)
	}
}

// debugLogPhase prints a phase separator in debug output.
func debugLogPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "\n--- %s ---\n", phase)
	}
}
