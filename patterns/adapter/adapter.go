// Package adapter demonstrates the Adapter pattern: translating a legacy
// interface into the one new code expects.
package adapter

import "strings"

// Printer is the interface modern callers expect.
type Printer interface {
	Print(message string) string
}

// LegacyPrinter has a different signature and shouts everything. It cannot
// be changed.
type LegacyPrinter struct{}

// PrintUpper is the legacy entry point.
func (LegacyPrinter) PrintUpper(prefix, message string) string {
	return strings.ToUpper(prefix + ": " + message)
}

// PrinterAdapter makes a LegacyPrinter usable wherever a Printer is
// expected.
type PrinterAdapter struct {
	Legacy LegacyPrinter
	Prefix string
}

func (a PrinterAdapter) Print(message string) string {
	prefix := a.Prefix
	if prefix == "" {
		prefix = "out"
	}
	return a.Legacy.PrintUpper(prefix, message)
}
