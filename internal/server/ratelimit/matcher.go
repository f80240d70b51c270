package ratelimit

import "strings"

// matchEndpoint resolves a request path and method to its endpoint
// configuration. Exact path matches win; configs whose path ends in "/" act
// as prefixes, so "/resumes/" covers "/resumes/{id}". Returns nil when
// nothing matches and the caller should fall back to the global default.
func matchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never throttled; probes hit it constantly.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
