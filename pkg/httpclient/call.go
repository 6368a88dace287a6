package httpclient

import "net/http"

type callConfig struct {
	includeAuth bool
	endpoint    string
	headers     http.Header
}

// CallOption tunes a single request.
type CallOption func(*callConfig)

// Public skips the Authorization header even when a token is stored. Used for
// login, registration and the anonymous catalog reads.
func Public() CallOption {
	return func(c *callConfig) {
		c.includeAuth = false
	}
}

// Endpoint names the call for logs and metrics, e.g. "items.list".
func Endpoint(name string) CallOption {
	return func(c *callConfig) {
		c.endpoint = name
	}
}

// Header adds an extra request header.
func Header(key, value string) CallOption {
	return func(c *callConfig) {
		c.headers.Add(key, value)
	}
}

func newCallConfig(opts []CallOption) callConfig {
	cfg := callConfig{
		includeAuth: true,
		headers:     http.Header{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
