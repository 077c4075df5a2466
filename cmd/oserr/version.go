package main

import "runtime/debug"

// buildVersionString resolves the module version embedded by the toolchain.
func buildVersionString() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown)"
}
