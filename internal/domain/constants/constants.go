// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment names used by the env.env config key.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
