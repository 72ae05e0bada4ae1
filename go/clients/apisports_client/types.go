package apisports_client

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string or number. The provider is not consistent
// about fields like grid, which arrive as "1" or 1.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexString(str)
		return nil
	}
	*f = FlexString(s)
	return nil
}

// FlexInt accepts a JSON number, a numeric string or null.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		*f = FlexInt{}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Values like "N/A" are treated as absent.
		*f = FlexInt{}
		return nil
	}
	*f = FlexInt{Value: n, Valid: true}
	return nil
}

// Ptr returns nil when the value was absent
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

type RaceFinish struct {
	Position FlexInt `json:"position"`
	Number   FlexInt `json:"number"`
}

type Team struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Logo               string     `json:"logo"`
	Base               string     `json:"base"`
	FirstTeamEntry     FlexInt    `json:"first_team_entry"`
	WorldChampionships FlexInt    `json:"world_championships"`
	HighestRaceFinish  RaceFinish `json:"highest_race_finish"`
	PolePositions      FlexInt    `json:"pole_positions"`
	FastestLaps        FlexInt    `json:"fastest_laps"`
	President          string     `json:"president"`
	Director           string     `json:"director"`
	TechnicalManager   string     `json:"technical_manager"`
	Chassis            string     `json:"chassis"`
	Engine             string     `json:"engine"`
	Tyres              string     `json:"tyres"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type DriverSeasonTeam struct {
	Season FlexInt `json:"season"`
	Team   TeamRef `json:"team"`
}

type Driver struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	Abbr               string             `json:"abbr"`
	Image              string             `json:"image"`
	Nationality        string             `json:"nationality"`
	Country            Country            `json:"country"`
	Birthdate          string             `json:"birthdate"`
	Number             FlexInt            `json:"number"`
	GrandsPrixEntered  FlexInt            `json:"grands_prix_entered"`
	WorldChampionships FlexInt            `json:"world_championships"`
	Podiums            FlexInt            `json:"podiums"`
	CareerPoints       FlexString         `json:"career_points"`
	Teams              []DriverSeasonTeam `json:"teams"`
}

// CurrentTeam is the first listed team, which the provider orders newest first.
func (d Driver) CurrentTeam() (TeamRef, bool) {
	if len(d.Teams) == 0 {
		return TeamRef{}, false
	}
	return d.Teams[0].Team, true
}

type DriverRef struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Abbr   string  `json:"abbr"`
	Number FlexInt `json:"number"`
	Image  string  `json:"image"`
}

type DriverRanking struct {
	Position FlexInt    `json:"position"`
	Driver   DriverRef  `json:"driver"`
	Team     TeamRef    `json:"team"`
	Points   FlexString `json:"points"`
	Wins     FlexInt    `json:"wins"`
	Season   FlexInt    `json:"season"`
}

type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type Competition struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

type CircuitRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Laps struct {
	Current FlexInt `json:"current"`
	Total   FlexInt `json:"total"`
}

type FastestLap struct {
	Driver struct {
		ID int `json:"id"`
	} `json:"driver"`
	Time string `json:"time"`
}

type Race struct {
	ID          int         `json:"id"`
	Competition Competition `json:"competition"`
	Circuit     CircuitRef  `json:"circuit"`
	Season      FlexInt     `json:"season"`
	Type        string      `json:"type"`
	Laps        Laps        `json:"laps"`
	FastestLap  FastestLap  `json:"fastest_lap"`
	Distance    string      `json:"distance"`
	Timezone    string      `json:"timezone"`
	Date        string      `json:"date"`
	Weather     string      `json:"weather"`
	Status      string      `json:"status"`
}

// RaceRanking is one row of a race classification
type RaceRanking struct {
	Race struct {
		ID int `json:"id"`
	} `json:"race"`
	Driver   DriverRef  `json:"driver"`
	Team     TeamRef    `json:"team"`
	Position FlexInt    `json:"position"`
	Time     FlexString `json:"time"`
	Laps     FlexInt    `json:"laps"`
	Grid     FlexString `json:"grid"`
	Pits     FlexInt    `json:"pits"`
	Gap      FlexString `json:"gap"`
}
