package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter prints key=value lines with the keys right-aligned to Padding.
type StatusPrinter struct {
	Out     io.Writer
	Padding int
}

func (s StatusPrinter) Print(key string, value any) {
	fmt.Fprintf(s.Out, "%s%s=%v\n", strings.Repeat(" ", max(0, s.Padding-len(key))), key, value)
}
