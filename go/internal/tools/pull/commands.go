package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcdev12/formulated/go/internal/config"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/spf13/cobra"
)

var (
	configPath string
	remoteURL  string
	token      string
	season     int
	runsKind   string
	runsLimit  int
	revoke     bool

	rootCmd = &cobra.Command{
		Use:           "pull",
		Short:         "Synchronise F1 data from the upstream providers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	teamsCmd = &cobra.Command{
		Use:   "teams",
		Short: "Pull all teams",
		Args:  cobra.NoArgs,
		RunE:  runSync(models.SyncKindTeams),
	}

	driversCmd = &cobra.Command{
		Use:   "drivers",
		Short: "Pull the drivers ranked in a season",
		Args:  cobra.NoArgs,
		RunE:  runSync(models.SyncKindDrivers),
	}

	racesCmd = &cobra.Command{
		Use:   "races",
		Short: "Pull a season's races, circuits and classifications",
		Args:  cobra.NoArgs,
		RunE:  runSync(models.SyncKindRaces),
	}

	runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "Show recent sync runs",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	grantStaffCmd = &cobra.Command{
		Use:   "grant-staff [email]",
		Short: "Allow a user to trigger syncs through the admin API",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrantStaff,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "run against a server's admin API instead of the local database")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FORMULATED_TOKEN"), "session token of a staff user, for --remote")

	for _, cmd := range []*cobra.Command{driversCmd, racesCmd} {
		cmd.Flags().IntVar(&season, "season", 0, "season year (default: current year)")
	}

	runsCmd.Flags().StringVar(&runsKind, "kind", "", "only show runs of this kind (teams, drivers, races)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "number of runs to show")

	grantStaffCmd.Flags().BoolVar(&revoke, "revoke", false, "remove staff access instead")

	rootCmd.AddCommand(teamsCmd, driversCmd, racesCmd, runsCmd, grantStaffCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runSync(kind models.SyncKind) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if season < 0 {
			return fmt.Errorf("invalid season %d", season)
		}

		b, err := newBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Starting to pull %s...\n", kind)
		run, err := b.Sync(cmd.Context(), kind, season)
		if run != nil {
			printRun(cmd.OutOrStdout(), run)
		}
		if err != nil {
			return err
		}
		if !run.Success {
			return fmt.Errorf("%s sync failed", kind)
		}
		return nil
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	kind := models.SyncKind(strings.ToLower(runsKind))
	b, err := newBackend(cmd.Context())
	if err != nil {
		return err
	}
	defer b.Close()

	runs, err := b.Runs(cmd.Context(), kind, runsLimit)
	if err != nil {
		return err
	}
	printRuns(cmd.OutOrStdout(), runs)
	return nil
}

func runGrantStaff(cmd *cobra.Command, args []string) error {
	if remoteURL != "" {
		return fmt.Errorf("grant-staff only works against the local database")
	}
	b, err := newLocalBackend(cmd.Context())
	if err != nil {
		return err
	}
	defer b.Close()

	user, err := b.users.SetStaff(cmd.Context(), args[0], !revoke)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s staff access: %t\n", user.Email, user.IsStaff)
	return nil
}
