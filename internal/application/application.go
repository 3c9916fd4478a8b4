package application

const (
	// AppName is the application name used for directories and identification
	AppName = "catalogr"

	// AppVersion is the release version reported by the version flag
	AppVersion = "0.3.0"
)
