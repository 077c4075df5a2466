// Package osstatus inspects platform status codes and reports failures.
package osstatus

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Status is a signed 32-bit platform status code. Zero means success;
// any other value is a platform-specific failure indicator.
type Status int32

// NoErr is the success sentinel.
const NoErr Status = 0

// Check reports a failed status to stderr and passes the status through.
// On NoErr it does nothing. Otherwise it writes a single line of the form
//
//	Error: <operation> (<representation>)
//
// where the representation is the four-character code if the status decodes
// as one, or the signed decimal value otherwise. The return value is always
// the input status, so callers can chain it into their own error checks.
func Check(code Status, operation string) Status {
	return Fcheck(os.Stderr, code, operation)
}

// Fcheck is Check with an explicit sink. A write error on w is ignored;
// the report is a diagnostic aid and must not itself fail.
func Fcheck(w io.Writer, code Status, operation string) Status {
	if code == NoErr {
		return NoErr
	}
	fmt.Fprintf(w, "Error: %s (%s)\n", operation, code)
	return code
}

// FourCC returns the status as a four-character code if all four bytes of
// the big-endian representation are printable ASCII. Multimedia frameworks
// pack compact identifiers this way, e.g. 'fmt?' for an unsupported format.
func (s Status) FourCC() (string, bool) {
	b := [4]byte{
		byte(uint32(s) >> 24),
		byte(uint32(s) >> 16),
		byte(uint32(s) >> 8),
		byte(uint32(s)),
	}
	for _, c := range b {
		if !printableASCII(c) {
			return "", false
		}
	}
	return string(b[:]), true
}

// String renders the status for a diagnostic message: the four-character
// code wrapped in single quotes when the heuristic applies, the signed
// decimal value otherwise.
func (s Status) String() string {
	if cc, ok := s.FourCC(); ok {
		return "'" + cc + "'"
	}
	return strconv.FormatInt(int64(s), 10)
}

// printableASCII reports whether c is in the isprint range. Space counts:
// real four-character codes pad short identifiers with trailing spaces.
func printableASCII(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}
