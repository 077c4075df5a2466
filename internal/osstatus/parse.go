package osstatus

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a textual status literal into a Status. It accepts an
// integer (decimal, or hex with a 0x prefix) or a four-character code,
// optionally wrapped in single quotes: -50, 0x666D743F, "fmt?", "'fmt?'".
func Parse(s string) (Status, error) {
	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		return Status(n), nil
	}

	lit := s
	if strings.HasPrefix(lit, "'") && strings.HasSuffix(lit, "'") && len(lit) >= 2 {
		lit = lit[1 : len(lit)-1]
	}
	if len(lit) != 4 {
		return 0, fmt.Errorf("invalid status code %q: not an int32 or a four-character code", s)
	}
	for i := 0; i < 4; i++ {
		if !printableASCII(lit[i]) {
			return 0, fmt.Errorf("invalid status code %q: byte %d is not printable ASCII", s, i)
		}
	}
	return cc(lit), nil
}
