package clients

// ExternalSource names an upstream data provider. It doubles as the
// circuit breaker name for that provider's client.
type ExternalSource string

const (
	// ExternalSourceAPISports is the API-Sports Formula 1 API (teams, drivers, races, rankings)
	ExternalSourceAPISports ExternalSource = "apisports"

	// ExternalSourceOpenF1 is the public OpenF1 API used to enrich driver records
	ExternalSourceOpenF1 ExternalSource = "openf1"
)
