package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths: customer-facing menu, assistant and recommendations
	return []string{
		"/api/menu",
		"/api/menu/:id",
		"/api/assistant/chat",
		"/api/recommendations",
		"/graphql",
	}
}
