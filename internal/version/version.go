// Package version reports the wordmodel release and a fingerprint of the
// running binary.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime/debug"
	"sync"
)

// Version is the current semantic version
const Version = "0.1.0"

// Set with -ldflags "-X github.com/standardbeagle/wordmodel/internal/version.GitCommit=..."
var (
	BuildDate = "development"
	GitCommit = "unknown"
)

// Info returns the short version string
func Info() string {
	return Version
}

// FullInfo returns the version line printed by wordmodel --version
func FullInfo() string {
	return fmt.Sprintf("wordmodel %s (commit: %s, built: %s, build: %s)", Version, GitCommit, BuildDate, BuildID())
}

// BuildID fingerprints the binary from its Go version, main module and VCS
// revision. Falls back to Version-GitCommit without embedded build info.
var BuildID = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version + "-" + GitCommit
	}

	parts := []string{info.GoVersion, info.Main.Path, info.Main.Version}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" || setting.Key == "vcs.modified" {
			parts = append(parts, setting.Key+"="+setting.Value)
		}
	}

	sum := sha256.New()
	for _, part := range parts {
		sum.Write([]byte(part))
		sum.Write([]byte{0})
	}
	return hex.EncodeToString(sum.Sum(nil))[:12]
})
