package contract

// IUUIDGenerator generates unique identifiers for request tracing.
type IUUIDGenerator interface {
	NewUUID() string
}
