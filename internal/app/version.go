package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/JanRezzonico/API-Dipendenze/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version reported in startup logs and by /health.
// Commit and build time are appended only when they were set at build time.
func BuildVersion() string {
	v := Version
	if Commit != "" {
		v = fmt.Sprintf("%s (commit: %s", v, Commit)
		if BuildTime != "" {
			v += ", built: " + BuildTime
		}
		v += ")"
	}
	return v
}
