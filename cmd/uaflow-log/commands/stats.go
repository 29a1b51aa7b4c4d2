package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Runs              map[string]*RunSummary
	Nodes             map[string]*NodeStats
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// RunSummary holds statistics for a single reader or subscription run.
type RunSummary struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Endpoint   string
	Rejected   int
	FinalState string
}

// NodeStats holds per-identifier counts.
type NodeStats struct {
	Reads         int
	Notifications int
	Bad           int
	Timeouts      int
}

// Collect aggregates the events of the log file at path.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Runs:              make(map[string]*RunSummary),
		Nodes:             make(map[string]*NodeStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	run, ok := s.Runs[event.RunID]
	if !ok {
		run = &RunSummary{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Runs[event.RunID] = run
	}
	run.Events++
	if event.Timestamp.After(run.LastSeen) {
		run.LastSeen = event.Timestamp
	}
	if event.Endpoint != "" && run.Endpoint == "" {
		run.Endpoint = event.Endpoint
	}

	switch {
	case event.Read != nil:
		n := s.node(event.Read.Identifier)
		n.Reads++
		switch {
		case event.Read.Status == nil:
			n.Timeouts++
		case *event.Read.Status&0x80000000 != 0:
			n.Bad++
		}
	case event.Notification != nil:
		n := s.node(event.Notification.Identifier)
		n.Notifications++
		if event.Notification.Status&0x80000000 != 0 {
			n.Bad++
		}
	case event.Sync != nil:
		run.Rejected += len(event.Sync.Rejected)
	case event.StateChange != nil:
		if event.StateChange.Entity == log.StateEntitySubscription {
			run.FinalState = event.StateChange.NewState
		}
	case event.Error != nil:
		s.Errors++
	}
}

func (s *Stats) node(identifier string) *NodeStats {
	n, ok := s.Nodes[identifier]
	if !ok {
		n = &NodeStats{}
		s.Nodes[identifier] = n
	}
	return n
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== uaflow Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryRead, log.CategorySync, log.CategoryNotification, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	if len(stats.Runs) > 0 {
		type runInfo struct {
			id    string
			stats *RunSummary
		}
		runs := make([]runInfo, 0, len(stats.Runs))
		for id, rs := range stats.Runs {
			runs = append(runs, runInfo{id, rs})
		}
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, r := range runs {
			duration := r.stats.LastSeen.Sub(r.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(r.id), r.stats.Events, duration)
			if r.stats.Endpoint != "" {
				fmt.Fprintf(w, "           Endpoint: %s\n", r.stats.Endpoint)
			}
			if r.stats.Rejected > 0 {
				fmt.Fprintf(w, "           Rejected items: %d\n", r.stats.Rejected)
			}
			if r.stats.FinalState != "" {
				fmt.Fprintf(w, "           State: %s\n", r.stats.FinalState)
			}
		}
	}

	if len(stats.Nodes) > 0 {
		ids := make([]string, 0, len(stats.Nodes))
		for id := range stats.Nodes {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Nodes: %d\n", len(ids))
		for _, id := range ids {
			n := stats.Nodes[id]
			fmt.Fprintf(w, "  %-32s reads=%d notifications=%d bad=%d timeouts=%d\n",
				id, n.Reads, n.Notifications, n.Bad, n.Timeouts)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
