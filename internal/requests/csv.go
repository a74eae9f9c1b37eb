package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads rows of "id,burst,arrival[,priority]". Purely numeric ids get
// a "P" prefix so they read like the rest of the simulator's output.
func LoadCSV(r io.Reader) ([]ProcessDescriptor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]ProcessDescriptor, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3 or 4", ErrInvalidProcess, i+1, len(row))
		}
		var p ProcessDescriptor
		p.ProcessId = strings.TrimSpace(row[0])
		if _, err := strconv.Atoi(p.ProcessId); err == nil {
			p.ProcessId = "P" + p.ProcessId
		}
		if p.BurstTime, err = atoi(row[1], i); err != nil {
			return nil, err
		}
		if p.ArrivalTime, err = atoi(row[2], i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if p.Priority, err = atoi(row[3], i); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}

	return processes, ValidateProcesses(processes)
}

func atoi(s string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %v", ErrInvalidProcess, line+1, err)
	}
	return v, nil
}
