package basicsig

import "runtime/debug"

var (
	Version         = "v0.0.0-in-progress"
	PrimitiveModule = "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// LibraryVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func LibraryVersion() string {
	return Version
}

// PrimitiveVersion returns the version of the elliptic-curve module the
// signature schemes delegate to, as recorded in the build info. It returns
// "unknown" when build info is unavailable (e.g. in tests).
func PrimitiveVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != PrimitiveModule {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
