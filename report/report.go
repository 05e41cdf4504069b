// Package report persists benchmark results.
//
// WriteTimes produces one plain-text file per algorithm, "<name>_times", holding
// one mean per measured length, one per line, shortest decimal form. These files
// feed plotting scripts directly. WriteJSON stores the whole bench.Report.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/bench"
)

// ErrNilReport is returned when there is nothing to write.
var ErrNilReport = errors.New("report: nil report")

// TimesFile returns the file name WriteTimes uses for algorithm.
func TimesFile(algorithm string) string {
	return algorithm + "_times"
}

// WriteTimes writes one times file per configured algorithm into dir,
// creating dir if needed. It returns the written paths in algorithm order.
func WriteTimes(dir string, r *bench.Report) ([]string, error) {
	if r == nil {
		return nil, ErrNilReport
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	paths := make([]string, 0, len(r.Config.Algorithms))
	for _, name := range r.Config.Algorithms {
		var b strings.Builder
		for _, mean := range r.Means(name) {
			b.WriteString(strconv.FormatFloat(mean, 'f', -1, 64))
			b.WriteByte('\n')
		}
		path := filepath.Join(dir, TimesFile(name))
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return paths, fmt.Errorf("report: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteJSON writes r as indented JSON to path.
func WriteJSON(path string, r *bench.Report) error {
	if r == nil {
		return ErrNilReport
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*bench.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	var r bench.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: unmarshal %s: %w", path, err)
	}

	return &r, nil
}
