package apisports_client

const (
	// Base URL
	BaseURL = "https://api-formula-1.p.rapidapi.com"

	// API Endpoints
	TeamsEndpoint          = "/teams"
	DriversEndpoint        = "/drivers"
	DriverRankingsEndpoint = "/rankings/drivers"
	RacesEndpoint          = "/races"
	RaceRankingsEndpoint   = "/rankings/races"

	// Race types accepted by the races endpoint
	RaceTypeRace = "race"

	// Headers
	RapidAPIKeyHeader  = "X-RapidAPI-Key"
	RapidAPIHostHeader = "X-RapidAPI-Host"
	RapidAPIHost       = "api-formula-1.p.rapidapi.com"
)
