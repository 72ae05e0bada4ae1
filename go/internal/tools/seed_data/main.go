package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mcdev12/formulated/go/internal/dbconfig"
)

const defaultSnapshot = "go/internal/assets/f1_seed.json"

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	// 1) Load the JSON snapshot
	path := defaultSnapshot
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	snap, err := loadSnapshot(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert and count
	sum, err := NewSeeder(pool).Seed(ctx, snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	for _, row := range []struct {
		name string
		c    Counts
	}{
		{"Users", sum.Users},
		{"Teams", sum.Teams},
		{"Members", sum.Members},
		{"Circuits", sum.Circuits},
		{"Races", sum.Races},
		{"Positions", sum.Positions},
	} {
		fmt.Printf("%s seed complete: %d total, %d inserted, %d skipped, %d errors\n",
			row.name, row.c.Total, row.c.Inserted, row.c.Skipped, row.c.Errors)
	}
}
