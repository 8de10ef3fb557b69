package ntt

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("LATTICE_DEBUG") == "1"

// dbg prints only when LATTICE_DEBUG=1.
func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}
