// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderGoogle selects Google Cloud Pub/Sub for link events.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"

	// EnvDevelop marks a development deployment; push auth is skipped there.
	EnvDevelop = "develop"
	// EnvLocal marks a local deployment.
	EnvLocal = "local"
)
