package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Dashboard is a public read model; everything else under /api is authenticated
	return []string{"/api/health", "/api/dashboard"}
}
