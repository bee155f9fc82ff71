package store

// HealthStore reports whether the deadlines database is reachable
type HealthStore interface {
	// CheckConnectivity verifies the database answers a trivial query
	CheckConnectivity() error
}
