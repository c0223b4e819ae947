package rowan

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Stage debug flag so that element
// operations (which lack a Stage pointer) can check it cheaply.
var globalDebug bool

// warnf prints a recoverable warning to stderr. The animation core never
// panics; malformed animation targets degrade to warnings.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Only called when debug mode is on; in
// release mode callers skip this entirely.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("rowan debug: %s on disposed element %q (ID was %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (element %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}
