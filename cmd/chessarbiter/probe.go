// probe.go - Batch probing of FEN positions
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runProbe probes every position in cfg.Probe.File and writes a report entry
// per position. Repeats of an earlier position are marked. Unreadable positions
// are reported inline and counted; the run fails if any were found.
func runProbe(cfg *config.Config) error {
	file, err := os.Open(cfg.Probe.File)
	if err != nil {
		return errors.Wrapf(err, "opening probe file %s", cfg.Probe.File)
	}
	defer file.Close()

	fens, err := readFENs(file)
	if err != nil {
		return errors.Wrapf(err, "reading probe file %s", cfg.Probe.File)
	}

	results := worker.Collect(fens, cfg.Probe.Workers)
	detector := hashing.NewDuplicateDetector()
	writer := newReportWriter(cfg)
	failed := 0
	for _, res := range results {
		entry := output.Entry{Result: res}
		if res.Err != nil {
			failed++
		} else if first, dup := detector.CheckAndAdd(res.Hash, res.Index); dup {
			entry.SameAs = first + 1
		}
		if err := writer.WriteEntry(entry); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Probed %d positions with %d workers, %d invalid, %d repeated\n",
			len(results), cfg.Probe.Workers, failed, detector.DuplicateCount())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d positions could not be read: %w", failed, len(results), errors.ErrInvalidFEN)
	}
	return nil
}

// readFENs returns the non-blank lines of r, skipping lines starting with '#'.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// newReportWriter returns the writer for the configured report format.
func newReportWriter(cfg *config.Config) output.ReportWriter {
	switch cfg.Probe.Format {
	case config.JSONReport:
		return output.NewJSONWriter(cfg.OutputFile)
	case config.JSONLinesReport:
		return output.NewJSONWriterSingle(cfg.OutputFile)
	default:
		return output.NewTextWriter(cfg.OutputFile)
	}
}
