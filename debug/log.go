package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattias-p/mkjson/encode"
	"github.com/mattias-p/mkjson/ir"
)

// Logf writes a debug line to stderr, rendering any *ir.Node argument
// as canonical JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
