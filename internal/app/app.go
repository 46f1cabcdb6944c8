// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"contigmap/internal/cli"
	"contigmap/internal/cmdutil"
	"contigmap/internal/config"
	"contigmap/internal/contigs"
	"contigmap/internal/hit"
	"contigmap/internal/names"
	"contigmap/internal/version"
	"contigmap/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitOutput    = 3
	ExitCancelled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("contigmap")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			_, _ = fmt.Fprint(outw, config.Help)
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "contigmap version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	for _, k := range cfg.Undecoded {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: unknown configuration key %q", opts.ConfigFile, k)
	}
	if err := opts.Apply(&cfg); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	hits, contigNames, err := loadInputs(parent, opts.HitsFile, opts.FastaFile)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCancelled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	if opts.NamesOut != "" {
		if err := writeNames(opts.NamesOut, contigNames); err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return ExitOutput
		}
	}

	if !contigs.Contiguous(hits) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: rows of one contig are not adjacent; each run is reduced separately", opts.HitsFile)
	}
	results, err := contigs.GroupAndClassify(hits, contigNames, cfg.Options())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	for _, r := range results {
		if len(r.Intervals) == 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "contig %d (%s): every hit starts before %d", r.ContigNum, r.Name, cfg.Window.MinStart)
		}
	}

	if code := write(parent, outw, stderr, opts, results); code != ExitOK {
		return code
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitOutput
	}
	if contigs.CountIntervals(results) == 0 {
		return opts.NoMatchExitCode
	}
	return ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadInputs reads the hit table and the FASTA headers concurrently.
func loadInputs(ctx context.Context, hitsPath, fastaPath string) ([]hit.Hit, names.Names, error) {
	var (
		hits []hit.Hit
		nm   names.Names
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hits, err = hit.LoadCSV(hitsPath)
		return err
	})
	g.Go(func() error {
		var err error
		nm, err = names.Load(gctx, fastaPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return hits, nm, nil
}

func writeNames(path string, n names.Names) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := names.WriteYAML(fh, n); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fh.Close()
}

func write(ctx context.Context, outw io.Writer, stderr io.Writer, opts cli.Options, results []contigs.Result) int {
	in, writeErr := writers.StartContigWriter(outw, opts.Output, writers.Options{Sort: opts.Sort, Header: opts.Header}, 16)

	cancelled := false
send:
	for _, r := range results {
		select {
		case in <- r:
		case <-ctx.Done():
			cancelled = true
			break send
		}
	}
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitOutput
	}
	if cancelled {
		return ExitCancelled
	}
	return ExitOK
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitOutput
	}
	return code
}
