package openf1_client

const (
	// Base URL - OpenF1 is public and needs no API key
	BaseURL = "https://api.openf1.org/v1"

	// API Endpoints
	DriversEndpoint  = "/drivers"
	SessionsEndpoint = "/sessions"

	// Latest is accepted wherever a session or meeting key is expected
	Latest = "latest"

	// Headers
	UserAgentHeader = "User-Agent"
	UserAgent       = "Formulated-F1-App/1.0"
	AcceptHeader    = "Accept"
	JsonContentType = "application/json"
)
