package constants

import "time"

// ContentTypeHeader is the HTTP Content-Type header name.
const ContentTypeHeader = "Content-Type"

// Content types used by the Slack endpoints.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// DevServerPort is the default port of the local development server.
const DevServerPort = "56212"

// ServerReadTimeout is the HTTP server read timeout
const ServerReadTimeout = 15 * time.Second

// ServerWriteTimeout is the HTTP server write timeout
const ServerWriteTimeout = 15 * time.Second

// ServerIdleTimeout is the HTTP server idle timeout
const ServerIdleTimeout = 60 * time.Second

// ServerShutdownTimeout is the timeout for graceful server shutdown
const ServerShutdownTimeout = 5 * time.Second

// DefaultHTTPTimeout bounds every outbound call to Slack.
const DefaultHTTPTimeout = 10 * time.Second

// DefaultInitTimeout bounds cold-start initialization.
const DefaultInitTimeout = 10 * time.Second

// RequestIDByteSize is the number of random bytes used to generate request IDs
const RequestIDByteSize = 16

// MaxRequestBodyBytes caps decoded request bodies on the HTTP entry point.
const MaxRequestBodyBytes = 1 << 20
