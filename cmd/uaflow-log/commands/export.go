package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/uaflow/uaflow-go/pkg/log"
)

// RunExport exports the log file to the specified format.
// An empty output writes to stdout.
func RunExport(path, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return Export(path, format, w)
}

// Export writes the events of the log file at path to w.
func Export(path, format string, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "direction", "category", "endpoint", "subscription_id", "identifier", "status", "value"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		status, value := "", ""
		switch {
		case event.Read != nil:
			if event.Read.Status != nil {
				status = formatStatus(event.Read.Status)
				value = formatValue(event.Read.Value)
			}
		case event.Notification != nil:
			status = formatStatus(&event.Notification.Status)
			value = formatValue(event.Notification.Value)
		case event.StateChange != nil:
			value = event.StateChange.NewState
		case event.Error != nil:
			if event.Error.Code != nil {
				status = formatStatus(event.Error.Code)
			}
			value = event.Error.Message
		}

		subID := ""
		if event.SubscriptionID != 0 {
			subID = strconv.FormatUint(uint64(event.SubscriptionID), 10)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.RunID,
			event.Direction.String(),
			event.Category.String(),
			event.Endpoint,
			subID,
			event.Identifier(),
			status,
			value,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
