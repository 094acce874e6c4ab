package usecasecontract

import "time"

// IConfigProvider exposes the application configuration to usecases.
type IConfigProvider interface {
	GetUpstreamBaseURL() string
	GetAuthMode() string
	GetCacheStaleTime() time.Duration
	GetSessionFile() string
	GetUpstreamTimeout() time.Duration
}
