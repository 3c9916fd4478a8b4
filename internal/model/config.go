package model

// Config holds the application configuration
type Config struct {
	// APIBase is the root URL of the remote catalog API
	APIBase string `json:"api_base" ini:"base"`

	// APIPath is the course/tenant path segment of the API
	APIPath string `json:"api_path" ini:"path"`

	// TimeoutSeconds bounds every remote call
	TimeoutSeconds int `json:"timeout_seconds" ini:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		APIBase:        "https://ec-course-api.hexschool.io/v2",
		APIPath:        "",
		TimeoutSeconds: 30,
	}
}
