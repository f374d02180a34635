package version

// These variables are populated at build time using -ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Info returns a formatted string with version information
func Info() string {
	return Version + " (built " + BuildTime + ")"
}
