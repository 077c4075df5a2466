package osstatus

import "sync"

// knownMu protects registered. The builtin table is read-only after init.
var knownMu sync.RWMutex

// registered holds caller-supplied descriptions, layered over the builtin
// table (a registered entry wins).
var registered = map[Status]string{}

// cc builds a Status from a four-character code literal.
func cc(s string) Status {
	_ = s[3]
	return Status(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

// builtin maps well-known multimedia status codes to short descriptions.
var builtin = map[Status]string{
	cc("fmt?"): "unsupported data format",
	cc("typ?"): "unsupported file type",
	cc("prm?"): "insufficient file permissions",
	cc("chk?"): "invalid or unrecognized chunk",
	cc("pck?"): "invalid packet offset",
	cc("dta?"): "invalid or corrupt file",
	cc("optm"): "file not optimized for streaming",
	cc("stop"): "hardware not running",
	cc("what"): "unspecified hardware error",
	cc("who?"): "unknown hardware property",
	cc("!dev"): "bad device",
	cc("!str"): "bad stream",
	cc("!dat"): "unsupported device format",
	cc("!hog"): "device held exclusively by another process",
	cc("unop"): "unsupported hardware operation",
	-38:        "file not open",
	-39:        "end of file",
	-43:        "file not found",
	-50:        "bad parameter",
	-108:       "out of memory",
	-128:       "canceled by user",
}

// Describe returns a human description for a well-known or registered
// status code.
func Describe(code Status) (string, bool) {
	knownMu.RLock()
	desc, ok := registered[code]
	knownMu.RUnlock()
	if ok {
		return desc, true
	}
	desc, ok = builtin[code]
	return desc, ok
}

// Register adds or overrides a description for a status code. Used to fold
// user-configured code tables into lookups. Safe for concurrent use.
func Register(code Status, desc string) {
	knownMu.Lock()
	registered[code] = desc
	knownMu.Unlock()
}
