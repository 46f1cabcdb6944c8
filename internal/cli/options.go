// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"contigmap/internal/clibase"
	"contigmap/internal/cliutil"
	"contigmap/internal/config"
	"contigmap/internal/output"
)

// Options holds all contigmap flags and arguments.
type Options struct {
	clibase.Common

	// Input
	HitsFile  string
	FastaFile string

	// Window / labels (applied over the config only when set)
	MinStart   int
	MaxEnd     int
	Breakpoint int
	Tolerance  int
	Delimiter  string

	// Output
	Sort            bool
	NamesOut        string
	NoMatchExitCode int

	set map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "reduce BLAST hits to per-contig genome intervals", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [flags] <blast.csv> <contigs.fasta>\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --hits file             BLAST hit CSV (contig_num, ref_start, ref_end, ...) or '-'")
		fmt.Fprintln(out, "      --fasta file            Contig FASTA; headers look like name::Label")

		fmt.Fprintln(out, "\nWindow (defaults come from --config / environment):")
		fmt.Fprintln(out, "      --min-start int         Discard hits starting before this")
		fmt.Fprintln(out, "      --max-end int           Clamp interval ends to this")
		fmt.Fprintln(out, "      --breakpoint int        Fuse hits ending near this with the next hit")
		fmt.Fprintln(out, "      --tolerance int         Breakpoint tolerance")
		fmt.Fprintln(out, "      --delimiter string      Separator between contig name and label")

		fmt.Fprintln(out, "\nResults:")
		fmt.Fprintf(out, "      --sort                  Order contigs by bucket (intact, hypermut, other, largedel) [%s]\n", def("sort"))
		fmt.Fprintln(out, "      --names-out file        Write the contig number → name table as YAML")
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no intervals are produced [%s]\n", def("no-match-exit-code"))
		fmt.Fprintln(out, "\nFormats: text | json | jsonl")
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the two positional inputs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common, output.FormatText)

	fs.StringVar(&opt.HitsFile, "hits", "", "BLAST hit CSV")
	fs.StringVar(&opt.FastaFile, "fasta", "", "contig FASTA")

	fs.IntVar(&opt.MinStart, "min-start", 0, "discard hits starting before this")
	fs.IntVar(&opt.MaxEnd, "max-end", 0, "clamp interval ends to this")
	fs.IntVar(&opt.Breakpoint, "breakpoint", 0, "fuse hits ending near this")
	fs.IntVar(&opt.Tolerance, "tolerance", 0, "breakpoint tolerance")
	fs.StringVar(&opt.Delimiter, "delimiter", "", "name/label separator")

	fs.BoolVar(&opt.Sort, "sort", false, "order contigs by bucket [false]")
	fs.StringVar(&opt.NamesOut, "names-out", "", "write contig names as YAML")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no intervals are produced [1]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.set = cliutil.Visited(fs)

	for _, p := range posArgs {
		switch {
		case opt.HitsFile == "":
			opt.HitsFile = p
		case opt.FastaFile == "":
			opt.FastaFile = p
		default:
			return opt, fmt.Errorf("unexpected argument %q", p)
		}
	}

	if err := clibase.AfterParse(&opt.Common, noHeader, output.FormatText, output.FormatJSON, output.FormatJSONL); err != nil {
		return opt, err
	}
	if opt.HitsFile == "" || opt.FastaFile == "" {
		return opt, errors.New("both a BLAST hit CSV and a contig FASTA are required")
	}
	if opt.HitsFile == "-" && opt.FastaFile == "-" {
		return opt, errors.New("only one input may be read from stdin")
	}
	if opt.set["tolerance"] && opt.Tolerance < 0 {
		return opt, errors.New("--tolerance must be ≥ 0")
	}
	if opt.set["delimiter"] && opt.Delimiter == "" {
		return opt, errors.New("--delimiter must not be empty")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return opt, nil
}

// Apply overlays explicitly set window/label flags onto c and revalidates.
func (o Options) Apply(c *config.Config) error {
	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"min-start", o.MinStart, &c.Window.MinStart},
		{"max-end", o.MaxEnd, &c.Window.MaxEnd},
		{"breakpoint", o.Breakpoint, &c.Window.Breakpoint},
		{"tolerance", o.Tolerance, &c.Window.Tolerance},
	}
	for _, f := range ints {
		if o.set[f.name] {
			*f.dst = f.src
		}
	}
	if o.set["delimiter"] {
		c.Scheme.Delimiter = o.Delimiter
	}
	return c.Validate()
}
