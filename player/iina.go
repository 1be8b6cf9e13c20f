package player

import (
	"runtime"
)

// iinaAvailable reports whether IINA can be launched through LaunchServices.
func iinaAvailable() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := lookPath("open")
	return err == nil
}

// iinaArgs passes mpv options to IINA after the --args separator.
func iinaArgs(target, title, referrer string) []string {
	args := []string{"-a", "IINA", target, "--args"}

	if title != "" {
		args = append(args, "--mpv-force-media-title="+title)
	}

	if referrer != "" {
		args = append(args, "--mpv-referrer="+referrer)
	}

	return args
}
