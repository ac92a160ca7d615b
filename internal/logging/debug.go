// Package logging provides opt-in debug output, enabled by setting the
// TITR_DEBUG environment variable. Debug lines go to stderr so they never
// interleave with the console prompt on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Output is where debug lines are written; tests may redirect it.
var Output io.Writer = os.Stderr

// DebugEnabled reports whether TITR_DEBUG is set to a non-empty value.
func DebugEnabled() bool {
	return os.Getenv("TITR_DEBUG") != ""
}

// Debugf writes one prefixed debug line when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	fmt.Fprintf(Output, "debug: "+format+"\n", args...)
}
