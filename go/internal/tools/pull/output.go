package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/mcdev12/formulated/go/internal/models"
)

const maxPrintedErrors = 5

func printRun(w io.Writer, run *models.SyncRun) {
	if run.Success {
		fmt.Fprintf(w, "Sync of %s succeeded in %s\n", run.Kind, run.FinishedAt.Sub(run.StartedAt).Round(time.Second))
	} else {
		fmt.Fprintf(w, "Sync of %s failed\n", run.Kind)
	}

	keys := make([]string, 0, len(run.Counts))
	for k := range run.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "   %s: %d\n", k, run.Counts[k])
	}

	if len(run.Errors) == 0 {
		return
	}
	fmt.Fprintln(w, "Errors encountered:")
	for i, e := range run.Errors {
		if i == maxPrintedErrors {
			fmt.Fprintf(w, "   ... and %d more errors\n", len(run.Errors)-maxPrintedErrors)
			break
		}
		fmt.Fprintf(w, "   %d. %s\n", i+1, e)
	}
}

func printRuns(w io.Writer, runs []models.SyncRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No sync runs recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tKIND\tSOURCE\tRESULT\tERRORS")
	for _, r := range runs {
		result := "ok"
		if !r.Success {
			result = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", r.StartedAt.Format(time.DateTime), r.Kind, r.Source, result, len(r.Errors))
	}
	tw.Flush()
}
