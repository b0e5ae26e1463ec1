package version

// Version is overridden at build time with
// -ldflags "-X github.com/herhimstory-source/Reading-Log/internal/version.Version=..."
var Version = "0.1.0"

func GetCurrentVersion() string {
	return Version
}
