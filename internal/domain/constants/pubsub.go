// Package constants contains values shared between configuration and infrastructure.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
