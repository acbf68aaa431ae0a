// Package console provides small human-facing framing helpers for the
// engine's startup banner and closing summary. It is purely cosmetic: the
// driver never depends on anything printed here for correctness.
package console

import (
	"fmt"
	"strings"
)

// DefaultLineSize is the line width used by Title.
const DefaultLineSize = 80

// Line returns a single rule of the given size. E.g. "-------".
func Line(size int) string {
	return strings.Repeat("-", size)
}

// DoubleLine returns a doubled rule of the given size. E.g. "=======".
func DoubleLine(size int) string {
	return strings.Repeat("=", size)
}

// Title centers title between two double rules summing to DefaultLineSize.
func Title(title string) string {
	title = fmt.Sprintf(" %s ", title)
	startIndex := (DefaultLineSize / 2) - (len(title) / 2)
	delta := len(title) % 2

	return fmt.Sprintf("%s%s%s", DoubleLine(startIndex), title, DoubleLine(startIndex-delta))
}

// StartupBanner renders the banner cmd/engine prints before it starts
// reading input: a title rule followed by the resolved input path and the
// chunk reader's fuse tolerance, so an operator can confirm what a run is
// about to do without re-deriving it from flags.
func StartupBanner(inputPath string, tolerance int) string {
	return fmt.Sprintf("%s\ninput:     %s\ntolerance: %d bytes\n%s",
		Title("engine"), inputPath, tolerance, Line(DefaultLineSize))
}

// ClosingBanner renders the rule printed after the summary, marking where
// the account summary ends in case the engine's output is appended to a
// shared log or terminal.
func ClosingBanner() string {
	return DoubleLine(DefaultLineSize)
}
