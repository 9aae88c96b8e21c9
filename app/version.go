package app

import "fmt"

var (
	Version = "0.1.0"
	Dev     = ""
	Commit  = ""
)

// VersionString returns the name and version including build metadata
func VersionString() string {
	version := Version

	if Dev != "" {
		version += "-dev." + Commit
	}

	if Commit != "" && Dev == "" {
		version += " (" + Commit + ")"
	}

	return fmt.Sprintf("%s %s", Name(), version)
}
