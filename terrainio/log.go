package terrainio

import (
	"encoding/json"
	"fmt"
	"os"
)

// AppendIterLog appends one free-form line recording an iteration count to
// path (iter_out.txt), creating the file if it does not yet exist.
func AppendIterLog(path string, iterations uint32) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("terrainio: open %s: %w", path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "iterations=%d\n", iterations)
	if err != nil {
		return fmt.Errorf("terrainio: write %s: %w", path, err)
	}
	return nil
}

// AppendStats appends one JSON object describing a run's constraint
// satisfaction counts to path (stats_out.txt), one object per line.
func AppendStats(path string, record interface{}) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("terrainio: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("terrainio: encode %s: %w", path, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("terrainio: write %s: %w", path, err)
	}
	return nil
}
