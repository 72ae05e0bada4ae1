package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// execer is satisfied by *pgxpool.Pool
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Counts tallies one table
type Counts struct {
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

func (c *Counts) record(tag pgconn.CommandTag, err error) bool {
	c.Total++
	switch {
	case err != nil:
		c.Errors++
		return false
	case tag.RowsAffected() == 1:
		c.Inserted++
	default:
		c.Skipped++
	}
	return true
}

type Summary struct {
	Users     Counts
	Teams     Counts
	Members   Counts
	Circuits  Counts
	Races     Counts
	Positions Counts
}

// Seeder inserts a snapshot, leaving existing rows alone
type Seeder struct {
	db     execer
	cost   int
	getenv func(string) string
}

func NewSeeder(db execer) *Seeder {
	return &Seeder{db: db, cost: bcrypt.DefaultCost, getenv: os.Getenv}
}

func (s *Seeder) Seed(ctx context.Context, snap *Snapshot) (*Summary, error) {
	sum := &Summary{}

	for _, u := range snap.Users {
		password := s.getenv(u.PasswordEnv)
		if password == "" {
			password = u.DefaultPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return sum, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		tag, err := s.db.Exec(ctx, `
            INSERT INTO users (id, username, email, password_hash, is_staff)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT DO NOTHING
        `, seedID("user", u.Email), u.Username, u.Email, string(hash), u.IsStaff)
		s.report("user", u.Username, &sum.Users, tag, err)
	}

	drivers := map[string]bool{}
	for _, t := range snap.Teams {
		teamID := seedID("team", t.Name)
		tag, err := s.db.Exec(ctx, `
            INSERT INTO teams (id, name, description, status)
            VALUES ($1, $2, $3, 'active')
            ON CONFLICT DO NOTHING
        `, teamID, t.Name, t.Description)
		if !s.report("team", t.Name, &sum.Teams, tag, err) {
			continue
		}

		for _, d := range t.Drivers {
			tag, err := s.db.Exec(ctx, `
                INSERT INTO members (id, team_id, name, role, description)
                VALUES ($1, $2, $3, 'driver', $4)
                ON CONFLICT DO NOTHING
            `, seedID("member", d.Name), teamID, d.Name, d.Description)
			if s.report("driver", d.Name, &sum.Members, tag, err) {
				drivers[d.Name] = true
			}
		}
	}

	circuits := map[string]bool{}
	for _, c := range snap.Circuits {
		tag, err := s.db.Exec(ctx, `
            INSERT INTO circuits (id, name, location)
            VALUES ($1, $2, $3)
            ON CONFLICT DO NOTHING
        `, seedID("circuit", c.Name), c.Name, c.Location)
		if s.report("circuit", c.Name, &sum.Circuits, tag, err) {
			circuits[c.Name] = true
		}
	}

	for _, r := range snap.Races {
		if !circuits[r.Circuit] {
			sum.Races.Total++
			sum.Races.Errors++
			fmt.Fprintf(os.Stderr, "race %s references unknown circuit %s\n", r.Name, r.Circuit)
			continue
		}
		status := r.Status
		if status == "" {
			status = "scheduled"
		}
		raceID := seedID("race", r.Name)
		tag, err := s.db.Exec(ctx, `
            INSERT INTO races (id, circuit_id, name, description, start_at, status)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT DO NOTHING
        `, raceID, seedID("circuit", r.Circuit), r.Name, r.Description, r.StartAt, status)
		if !s.report("race", r.Name, &sum.Races, tag, err) {
			continue
		}

		for _, res := range r.Results {
			if !drivers[res.Driver] {
				sum.Positions.Total++
				sum.Positions.Errors++
				fmt.Fprintf(os.Stderr, "result for unknown driver %s in %s\n", res.Driver, r.Name)
				continue
			}
			tag, err := s.db.Exec(ctx, `
                INSERT INTO positions (race_id, driver_id, position, points)
                VALUES ($1, $2, $3, $4)
                ON CONFLICT (race_id, driver_id) DO NOTHING
            `, raceID, seedID("member", res.Driver), res.Position, res.Points)
			s.report("position", res.Driver, &sum.Positions, tag, err)
		}
	}

	return sum, nil
}

func (s *Seeder) report(kind, name string, c *Counts, tag pgconn.CommandTag, err error) bool {
	if !c.record(tag, err) {
		fmt.Fprintf(os.Stderr, "error inserting %s %s: %v\n", kind, name, err)
		return false
	}
	return true
}
