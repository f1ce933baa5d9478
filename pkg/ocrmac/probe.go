package ocrmac

import (
	"os/exec"
	"runtime"
	"strings"
)

// Prober reports the ambient host platform. It is an interface so platform
// and version gating can be substituted in tests without touching global
// process state.
type Prober interface {
	// OS returns the host operating system identifier, using runtime.GOOS
	// values ("darwin", "linux", "windows", ...).
	OS() string
	// OSVersion returns the host OS version string, or "" when it cannot
	// be determined.
	OSVersion() string
}

// SystemProber reads the real host platform.
type SystemProber struct{}

// OS returns the running operating system identifier.
func (SystemProber) OS() string { return runtime.GOOS }

// OSVersion reads the macOS product version via sw_vers.
func (SystemProber) OSVersion() string {
	out, err := exec.Command("/usr/bin/sw_vers", "-productVersion").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
