package teams

import (
	"github.com/mcdev12/formulated/go/internal/models"
)

// TeamParams carries every field a sync writes. Updates overwrite all of
// them, so a field missing upstream is cleared locally.
type TeamParams struct {
	ExternalID         *int
	Name               string
	Description        string
	Status             models.TeamStatus
	LogoURL            *string
	Base               *string
	FirstTeamEntry     *int
	WorldChampionships *int
	HighestRaceFinish  *int
	PolePositions      *int
	FastestLaps        *int
	President          *string
	Director           *string
	TechnicalManager   *string
	Chassis            *string
	Engine             *string
	Tyres              *string
}

// TeamSyncResult is the outcome of one SyncTeams run
type TeamSyncResult struct {
	Success      bool     `json:"success"`
	TeamsFetched int      `json:"teams_fetched"`
	TeamsCreated int      `json:"teams_created"`
	TeamsUpdated int      `json:"teams_updated"`
	Errors       []string `json:"errors"`
}

func (r *TeamSyncResult) OK() bool { return r.Success }

func (r *TeamSyncResult) Counts() map[string]int {
	return map[string]int{
		"teams_fetched": r.TeamsFetched,
		"teams_created": r.TeamsCreated,
		"teams_updated": r.TeamsUpdated,
	}
}

func (r *TeamSyncResult) ErrorMessages() []string { return r.Errors }
