// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"contigmap/internal/blocks"
	"contigmap/internal/config"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalsOK(t *testing.T) {
	o := mustParse(t, "blast.csv", "contigs.fasta")
	if o.HitsFile != "blast.csv" || o.FastaFile != "contigs.fasta" {
		t.Errorf("bad positionals %+v", o)
	}
	if o.Output != "text" || !o.Header || o.NoMatchExitCode != 1 {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "blast.csv", "--output", "json", "contigs.fasta", "--sort", "--no-header")
	if o.Output != "json" || !o.Sort || o.Header {
		t.Errorf("flags after positionals not parsed: %+v", o)
	}
}

func TestFlagInputs(t *testing.T) {
	o := mustParse(t, "--hits", "-", "--fasta", "c.fa")
	if o.HitsFile != "-" || o.FastaFile != "c.fa" {
		t.Errorf("bad flag inputs %+v", o)
	}
}

func TestErrorMissingFasta(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"blast.csv"}); err == nil {
		t.Fatalf("expected error when FASTA not supplied")
	}
}

func TestErrorTooManyPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.csv", "b.fa", "c.fa"}); err == nil {
		t.Fatalf("expected error for a third positional")
	}
}

func TestErrorBothStdin(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-", "-"}); err == nil {
		t.Fatalf("expected error when both inputs are stdin")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.csv", "b.fa", "-o", "svg"}); err == nil {
		t.Fatalf("expected error for unsupported output")
	}
}

func TestErrorNegativeTolerance(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.csv", "b.fa", "--tolerance", "-1"}); err == nil {
		t.Fatalf("expected error for negative tolerance")
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatalf("version not set")
	}
}

func TestApplyOnlySetFlags(t *testing.T) {
	o := mustParse(t, "a.csv", "b.fa", "--tolerance", "0", "--max-end", "9000", "--delimiter", "|")
	c := config.Default()
	if err := o.Apply(&c); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := blocks.Window{MinStart: 638, MaxEnd: 9000, Breakpoint: 6623, Tolerance: 0}
	if c.Window != want {
		t.Fatalf("window = %+v, want %+v", c.Window, want)
	}
	if c.Scheme.Delimiter != "|" {
		t.Fatalf("delimiter = %q", c.Scheme.Delimiter)
	}
}

func TestApplyInvalidWindow(t *testing.T) {
	o := mustParse(t, "a.csv", "b.fa", "--min-start", "10000")
	c := config.Default()
	if err := o.Apply(&c); err == nil {
		t.Fatalf("expected window validation error")
	}
}
