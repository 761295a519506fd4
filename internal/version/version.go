package version

// Build metadata, overridable at build time via -ldflags.
var (
	// Version is the semantic version of the tool.
	Version = "0.2.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
