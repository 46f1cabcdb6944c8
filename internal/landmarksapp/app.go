// internal/landmarksapp/app.go
package landmarksapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"contigmap/internal/clibase"
	"contigmap/internal/cliutil"
	"contigmap/internal/cmdutil"
	"contigmap/internal/config"
	"contigmap/internal/landmarks"
	"contigmap/internal/output"
	"contigmap/internal/version"
	"contigmap/internal/writers"
)

type options struct {
	clibase.Common
	Landmarks string
	Reference string
}

func parse(fs *flag.FlagSet, argv []string) (options, error) {
	var o options
	noHeader := clibase.Register(fs, &o.Common, output.FormatText)
	fs.StringVar(&o.Landmarks, "landmarks", "", "landmark YAML file")
	fs.StringVar(&o.Reference, "reference", "", "coordinate system to lay out")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if len(posArgs) > 1 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[1])
	}
	if len(posArgs) == 1 && o.Landmarks == "" {
		o.Landmarks = posArgs[0]
	}
	if err := clibase.AfterParse(&o.Common, noHeader, output.FormatText, output.FormatJSON); err != nil {
		return o, err
	}
	if o.Landmarks == "" {
		return o, errors.New("a landmark YAML file is required")
	}
	return o, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "lay out reference landmarks as tracks", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [flags] <landmarks.yaml>\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --landmarks file        Landmark YAML (list of {coordinates, landmarks})")
		fmt.Fprintln(out, "      --reference string      Coordinate system [from --config, else HIV1-B-FR-K03455-seed]")
		fmt.Fprintln(out, "\nFormats: text | json")
	})
	return fs
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := newFlagSet("contigmap-landmarks")
	fs.SetOutput(io.Discard)

	o, err := parse(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		code := 0
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = 2
		}
		fs.Usage()
		return flush(outw, stderr, code)
	}
	if o.Version {
		_, _ = fmt.Fprintf(outw, "contigmap version %s (contigmap-landmarks)\n", version.Version)
		return flush(outw, stderr, 0)
	}

	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	for _, k := range cfg.Undecoded {
		cmdutil.Warnf(stderr, o.Quiet, "%s: unknown configuration key %q", o.ConfigFile, k)
	}
	ref := cfg.Reference
	if o.Reference != "" {
		ref = o.Reference
	}

	if ctx.Err() != nil {
		return 130
	}
	sets, err := landmarks.Load(o.Landmarks)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	tracks, err := landmarks.Resolve(sets, ref)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	switch o.Output {
	case output.FormatJSON:
		err = output.WriteLandmarksJSON(outw, ref, tracks)
	default:
		err = output.WriteLandmarksText(outw, tracks, o.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}
