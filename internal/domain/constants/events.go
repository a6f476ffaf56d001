// Package constants holds identifiers shared across layers.
package constants

// Event publishing providers accepted in events.provider.
const (
	EventProviderLocal    = "local"
	EventProviderGoogle   = "google"
	EventProviderRabbitMQ = "rabbitmq"
)
