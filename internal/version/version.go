package version

// Version is the current CommitWise release. Release builds override it with
// -ldflags "-X github.com/thomas-vilte/commitwise/internal/version.Version=..."
var Version = "0.1.0"

// FullVersion returns the version with the v prefix
func FullVersion() string {
	return "v" + Version
}
