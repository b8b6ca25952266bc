// Text report rendering and CSV export. Both consume the core's outputs
// (Summary, completed-customer records); neither owns any simulation state.

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sim "github.com/mm1-sim/mm1-sim/sim"
)

// renderSummary writes the run summary. Homogeneous populations get the
// compact layout; mixed populations additionally get per-kind sections and
// cost figures.
func renderSummary(w io.Writer, cfg sim.Config, s *sim.Summary) {
	fmt.Fprintf(w, "%s Summary statistics %s\n", strings.Repeat("=", 9), strings.Repeat("=", 9))
	fmt.Fprintf(w, "Completed customers  : %d\n", s.Completed)
	fmt.Fprintf(w, "Balked customers     : %d\n", s.Balks)
	fmt.Fprintf(w, "Mean queue length    : %s\n", s.MeanQueueLength)
	fmt.Fprintf(w, "Mean system state    : %s\n", s.MeanSystemState)
	fmt.Fprintf(w, "Mean waiting time    : %s\n", s.MeanWaitingTime)
	fmt.Fprintf(w, "Mean service time    : %s\n", s.MeanServiceTime)
	fmt.Fprintf(w, "Mean time in system  : %s\n", s.MeanTimeInSystem)
	fmt.Fprintf(w, "Utilisation          : %s\n", s.Utilization)

	if s.Population == sim.PopulationMixed {
		renderKind(w, "Selfish customers", s.Selfish)
		renderKind(w, "Optimal customers", s.Optimal)
		fmt.Fprintf(w, "\n%s Mean cost (in time) %s\n", strings.Repeat("-", 9), strings.Repeat("-", 9))
		fmt.Fprintf(w, "All customers        : %s\n", s.MeanCost)
		fmt.Fprintf(w, "Selfish customers    : %s\n", s.Selfish.MeanCost)
		fmt.Fprintf(w, "Optimal customers    : %s\n", s.Optimal.MeanCost)
	}
	fmt.Fprintln(w, strings.Repeat("=", 39))
}

func renderKind(w io.Writer, title string, ks *sim.KindSummary) {
	fmt.Fprintf(w, "\n%s %s %s\n", strings.Repeat("-", 9), title, strings.Repeat("-", 9))
	fmt.Fprintf(w, "Completed            : %d\n", ks.Completed)
	fmt.Fprintf(w, "Balked               : %d\n", ks.Balks)
	fmt.Fprintf(w, "Mean queue length    : %s\n", ks.MeanQueueLength)
	fmt.Fprintf(w, "Mean system state    : %s\n", ks.MeanSystemState)
	fmt.Fprintf(w, "Mean waiting time    : %s\n", ks.MeanWaitingTime)
	fmt.Fprintf(w, "Mean time in system  : %s\n", ks.MeanTimeInSystem)
	fmt.Fprintf(w, "Balking probability  : %s\n", ks.BalkProbability)
}

// renderBatch writes one line per replication plus the cross-run mean of the
// per-run mean waits.
func renderBatch(w io.Writer, cfg sim.Config, results []sim.RunResult) {
	fmt.Fprintf(w, "%s Replications (%d runs) %s\n", strings.Repeat("=", 6), len(results), strings.Repeat("=", 6))
	waitSum, waitRuns := 0.0, 0
	for i, r := range results {
		fmt.Fprintf(w, "run %2d seed=%-20d completed=%-6d balked=%-6d mean wait=%s\n",
			i, r.Seed, r.Summary.Completed, r.Summary.Balks, r.Summary.MeanWaitingTime)
		if r.Summary.MeanWaitingTime.Valid {
			waitSum += r.Summary.MeanWaitingTime.Value
			waitRuns++
		}
	}
	if waitRuns > 0 {
		fmt.Fprintf(w, "mean of per-run mean waits: %.2f (over %d runs)\n", waitSum/float64(waitRuns), waitRuns)
	} else {
		fmt.Fprintf(w, "mean of per-run mean waits: undefined\n")
	}
}

// csvHeader is the exported column set for completed-customer records.
var csvHeader = []string{
	"customer",
	"arrival_time",
	"wait",
	"service_start_time",
	"service_time",
	"completion_time",
	"policy",
}

// exportCompleted writes the ordered completed-customer records to path.
func exportCompleted(path string, completed []*sim.Customer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, c := range completed {
		row := []string{
			strconv.Itoa(c.ID),
			formatFloat(c.ArrivalTime),
			formatFloat(c.Wait()),
			formatFloat(c.ServiceStart),
			formatFloat(c.ServiceTime),
			formatFloat(c.CompletionTime()),
			string(c.Policy.Kind),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", c.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
