package members

import (
	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
)

// MemberParams carries every field a sync writes
type MemberParams struct {
	TeamID       uuid.UUID
	Name         string
	Role         models.MemberRole
	Description  string
	ExternalID   *int
	DriverNumber *int
	NameAcronym  *string
	CountryCode  *string
	HeadshotURL  *string
}

// DriverLookup holds the keys a classification entry can be matched on,
// in precedence order.
type DriverLookup struct {
	ExternalID   *int
	Name         string
	DriverNumber *int
	NameAcronym  *string
}

// DriverSyncResult is the outcome of one SyncDrivers run
type DriverSyncResult struct {
	Success        bool     `json:"success"`
	Season         int      `json:"season"`
	DriversFetched int      `json:"drivers_fetched"`
	DriversCreated int      `json:"drivers_created"`
	DriversUpdated int      `json:"drivers_updated"`
	Errors         []string `json:"errors"`
}

func (r *DriverSyncResult) OK() bool { return r.Success }

func (r *DriverSyncResult) Counts() map[string]int {
	return map[string]int{
		"drivers_fetched": r.DriversFetched,
		"drivers_created": r.DriversCreated,
		"drivers_updated": r.DriversUpdated,
	}
}

func (r *DriverSyncResult) ErrorMessages() []string { return r.Errors }
