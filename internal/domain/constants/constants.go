package constants

// Pub/Sub provider selectors used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail provider selectors used in configuration.
const (
	MailProviderSMTP      = "smtp"
	MailProviderSimulator = "simulator"
)
