// Package driver wires the bounded chunk reader, the transaction record
// parser, and the processor together: the glue that spec.md treats as an
// "external collaborator" and that this repository fully implements.
package driver

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/toulis9999/mini-payments/internal/appconfig"
	"github.com/toulis9999/mini-payments/internal/applog"
	"github.com/toulis9999/mini-payments/internal/chunkreader"
	"github.com/toulis9999/mini-payments/internal/ledger"
	"github.com/toulis9999/mini-payments/internal/txnrecord"
)

// Exit codes, per spec.md §6.
const (
	ExitOK    = 0
	ExitFatal = 1
)

// Run opens cfg.InputPath, processes its transactions, and writes the
// summary to out. It returns the process exit code rather than an error;
// callers translate it via os.Exit. On a fatal condition detected
// mid-stream nothing is written to out: no partial summary is emitted.
func Run(cfg appconfig.Config, logger applog.Logger, out io.Writer) int {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		logger.Errorf("could not open input file %q: %v", cfg.InputPath, err)
		return ExitFatal
	}
	defer f.Close()

	return RunFrom(f, cfg.Tolerance(), logger, out)
}

// RunFrom drives the reader/parser/processor pipeline over src, an already
// open byte source, and writes the rendered summary to out on success. It
// is the seam end-to-end tests exercise directly, without touching the
// filesystem.
func RunFrom(src io.Reader, tolerance int, logger applog.Logger, out io.Writer) int {
	reader := chunkreader.New(src, '\n', tolerance)
	processor := ledger.New()

	recordNum := 0

	for {
		chunk, err := reader.NextChunk()

		switch {
		case errors.Is(err, io.EOF):
			if err := processor.Format(out); err != nil {
				logger.Errorf("could not write summary: %v", err)
				return ExitFatal
			}

			return ExitOK

		case errors.Is(err, chunkreader.ErrToleranceExceeded):
			logger.Errorf("input framing lost: a record exceeded the %d-byte tolerance", tolerance)
			return ExitFatal

		case err != nil:
			logger.Errorf("fatal I/O error reading input: %v", err)
			return ExitFatal
		}

		recordNum++
		processRecord(processor, logger, recordNum, string(chunk))
	}
}

// processRecord decodes, parses and applies a single record, logging and
// discarding it on any non-fatal error per §7's propagation policy.
func processRecord(processor *ledger.Processor, logger applog.Logger, recordNum int, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	if !utf8.ValidString(line) {
		logger.Warnf("record %d: invalid UTF-8, skipping: %q", recordNum, line)
		return
	}

	tx, err := txnrecord.Parse(line)
	if err != nil {
		logger.Warnf("record %d: could not parse %q: %v", recordNum, line, err)
		return
	}

	if err := processor.Process(tx); err != nil {
		logger.Warnf("record %d: rejected %q: %v", recordNum, line, err)
	}
}
