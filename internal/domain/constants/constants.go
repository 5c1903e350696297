// Package constants defines shared domain-level constant values.
package constants

// Pub/Sub provider types
const (
	// PubSubProviderLocal uses a local HTTP endpoint simulating Pub/Sub push
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle uses Google Cloud Pub/Sub
	PubSubProviderGoogle = "google"
)
